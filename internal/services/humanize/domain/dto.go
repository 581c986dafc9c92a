// Package domain holds the humanize module's transport types and ports
package domain

import "context"

// HumanizeInput is the POST /humanize body. A missing or malformed body decodes to empty Text
type HumanizeInput struct {
	Text string `json:"text" example:"In conclusion, it is important to note that the results were good."`
}

// HumanizeOutput is written bare as the response body
type HumanizeOutput struct {
	Humanized string `json:"humanized" example:"All in all, the results turned out well."`
}

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	Humanize(ctx context.Context, in HumanizeInput) (HumanizeOutput, error)
}

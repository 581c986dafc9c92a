// Package domain holds the detect module's transport types and ports
package domain

import "authorcheck/internal/core/verdict"

// DetectInput is the POST /detect body. A missing or malformed body decodes to empty Text
type DetectInput struct {
	Text string `json:"text" example:"In conclusion, the committee approved the budget after some discussion."`
}

// DetectOutput is the verdict written bare as the response body
type DetectOutput = verdict.Verdict

package domain

import "context"

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectOutput, error)
}

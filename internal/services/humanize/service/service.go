// Package service rewrites text through the paraphraser
package service

import (
	"context"

	"authorcheck/internal/services/humanize/domain"
)

// Paraphraser is the slice of the paraphraser adapter the service needs
type Paraphraser interface {
	Humanize(ctx context.Context, text string) (string, error)
}

// Service is the humanize use case
type Service interface {
	Humanize(ctx context.Context, in domain.HumanizeInput) (domain.HumanizeOutput, error)
}

type svc struct{ p Paraphraser }

// New constructs the humanize service
func New(p Paraphraser) Service { return &svc{p: p} }

// Humanize passes text of any length, empty included, to the paraphraser
func (s *svc) Humanize(ctx context.Context, in domain.HumanizeInput) (domain.HumanizeOutput, error) {
	out, err := s.p.Humanize(ctx, in.Text)
	if err != nil {
		return domain.HumanizeOutput{}, err
	}
	return domain.HumanizeOutput{Humanized: out}, nil
}

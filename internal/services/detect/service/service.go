// Package service runs the hybrid detection pipeline for one text
package service

import (
	"context"

	"authorcheck/internal/core/patterns"
	"authorcheck/internal/core/verdict"
	"authorcheck/internal/platform/metrics"
	"authorcheck/internal/services/detect/domain"

	"golang.org/x/sync/errgroup"
)

// Classifier is the slice of the classifier adapter the pipeline needs
type Classifier interface {
	Ready() error
	Score(ctx context.Context, text string) (float64, error)
}

// Service is the detect use case
type Service interface {
	Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error)
}

type svc struct {
	scanner *patterns.Scanner
	clf     Classifier
}

// New constructs the detect service
func New(scanner *patterns.Scanner, clf Classifier) Service {
	return &svc{scanner: scanner, clf: clf}
}

// Detect fails with ServiceUnavailable before anything else when the classifier never started,
// so even short text gets the 503. Short text then returns without scoring. Otherwise heuristics
// and the classifier run concurrently and their results are fused
func (s *svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	if err := s.clf.Ready(); err != nil {
		return domain.DetectOutput{}, err
	}

	if verdict.IsShort(in.Text) {
		metrics.ShortTexts.Inc()
		v := verdict.ShortText()
		metrics.Verdicts.WithLabelValues(string(v.Label)).Inc()
		return v, nil
	}

	var (
		h     patterns.Result
		rawAI float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h = s.scanner.Scan(in.Text)
		return nil
	})
	g.Go(func() error {
		p, err := s.clf.Score(gctx, in.Text)
		rawAI = p
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DetectOutput{}, err
	}

	for _, ph := range h.Matches {
		metrics.PhraseHits.WithLabelValues(ph).Inc()
	}
	v := verdict.Combine(in.Text, h, rawAI)
	metrics.Verdicts.WithLabelValues(string(v.Label)).Inc()
	return v, nil
}

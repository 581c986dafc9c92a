package classifier

import (
	"context"
	"time"

	perr "authorcheck/internal/platform/errors"
	"authorcheck/internal/platform/logger"
	"authorcheck/internal/platform/metrics"
	"authorcheck/internal/platform/net/http/bind"
)

const metricName = "classifier"

// warmupText is long enough to exercise a real forward pass
const warmupText = "The quick brown fox jumps over the lazy dog while the committee reviews the budget."

// Adapter turns text into a raw AI probability using a Backend
type Adapter struct {
	backend  Backend
	maxChars int
	cause    error
}

// New wraps an already initialised backend
func New(b Backend) *Adapter {
	return &Adapter{backend: b, maxChars: DefaultMaxChars}
}

// Unavailable builds an adapter that is absent for the process lifetime
func Unavailable(cause error) *Adapter {
	if cause == nil {
		cause = perr.Unavailablef("classifier not configured")
	}
	return &Adapter{maxChars: DefaultMaxChars, cause: cause}
}

// Open validates o, builds the HTTP backend and optionally warms it up.
// It never fails; a failed start yields an unavailable adapter carrying the cause
func Open(ctx context.Context, o Options) *Adapter {
	log := logger.Named("classifier")
	log.Info().Str("model", o.Model).Str("url", o.URL).Msg("loading detector")

	a := open(ctx, o)
	metrics.SetBackendUp(metricName, a.Available())
	if !a.Available() {
		log.Error().Err(a.cause).Str("model", o.Model).Msg("detector init failed")
		return a
	}
	log.Info().Str("model", o.Model).Msg("detector ready")
	return a
}

func open(ctx context.Context, o Options) *Adapter {
	if o.URL == "" {
		return Unavailable(perr.Unavailablef("classifier url not configured"))
	}
	if err := bind.Validate(o); err != nil {
		return Unavailable(perr.Wrapf(err, perr.ErrorCodeUnavailable, "classifier options invalid"))
	}

	a := New(NewHTTPBackend(o))
	a.maxChars = o.MaxChars
	if !o.Warmup {
		return a
	}

	raw, err := a.backend.Classify(ctx, warmupText)
	if err == nil {
		_, err = Normalize(raw)
	}
	if err != nil {
		return Unavailable(perr.Wrapf(err, perr.ErrorCodeUnavailable, "classifier warmup failed"))
	}
	return a
}

// Available reports whether the backend initialised
func (a *Adapter) Available() bool { return a.backend != nil }

// Err returns the initialisation failure, nil when available
func (a *Adapter) Err() error { return a.cause }

// Ready returns nil when available, otherwise the ServiceUnavailable error callers receive
func (a *Adapter) Ready() error {
	if a.Available() {
		return nil
	}
	return perr.Wrap(a.cause, perr.ErrorCodeUnavailable, MsgUnavailable)
}

// Name returns the backend name, empty when unavailable
func (a *Adapter) Name() string {
	if a.backend == nil {
		return ""
	}
	return a.backend.Name()
}

// MaxChars returns the input truncation length
func (a *Adapter) MaxChars() int { return a.maxChars }

// Score classifies the first MaxChars characters of text and returns the raw AI probability.
// A missing AI label is not an error: the probability is 0 and a warning is logged
func (a *Adapter) Score(ctx context.Context, text string) (float64, error) {
	start := time.Now()
	if err := a.Ready(); err != nil {
		metrics.ObserveBackend(metricName, metrics.OutcomeUnavailable, start)
		return 0, err
	}

	raw, err := a.backend.Classify(ctx, Truncate(text, a.maxChars))
	if err != nil {
		metrics.ObserveBackend(metricName, metrics.OutcomeError, start)
		logger.C(ctx).Error().Err(err).Str("backend", a.backend.Name()).Msg("classifier call failed")
		return 0, perr.Classificationf("%v", err)
	}

	scores, err := Normalize(raw)
	if err != nil {
		metrics.ObserveBackend(metricName, metrics.OutcomeError, start)
		logger.C(ctx).Error().Err(err).Str("backend", a.backend.Name()).Msg("classifier output rejected")
		return 0, err
	}
	metrics.ObserveBackend(metricName, metrics.OutcomeOK, start)

	p, ok := RawAIProbability(scores)
	if !ok {
		labels := make([]string, 0, len(scores))
		for _, s := range scores {
			labels = append(labels, s.Label)
		}
		logger.C(ctx).Warn().Strs("labels", labels).Str("backend", a.backend.Name()).Msg("ai label missing")
	}
	return p, nil
}

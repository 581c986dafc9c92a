package paraphraser

import (
	"context"
	"time"

	perr "authorcheck/internal/platform/errors"
	"authorcheck/internal/platform/logger"
	"authorcheck/internal/platform/metrics"
	"authorcheck/internal/platform/net/http/bind"
)

const metricName = "paraphraser"

const warmupText = "The meeting was moved to Thursday because the room was booked."

// Adapter rewrites text through a Backend with a fixed DecodingConfig
type Adapter struct {
	backend Backend
	cfg     DecodingConfig
	cause   error
}

// New wraps an already initialised backend
func New(b Backend) *Adapter {
	return &Adapter{backend: b, cfg: DefaultDecoding()}
}

// Unavailable builds an adapter that is absent for the process lifetime
func Unavailable(cause error) *Adapter {
	if cause == nil {
		cause = perr.Unavailablef("paraphraser not configured")
	}
	return &Adapter{cfg: DefaultDecoding(), cause: cause}
}

// Open builds the backend selected by o.Kind and optionally warms it up.
// It never fails; a failed start yields an unavailable adapter carrying the cause
func Open(ctx context.Context, o Options) *Adapter {
	o = o.withDefaults()
	log := logger.Named("paraphraser")
	log.Info().Str("kind", o.Kind).Str("model", o.Model).Msg("loading humanizer")

	a := open(ctx, o)
	metrics.SetBackendUp(metricName, a.Available())
	if !a.Available() {
		log.Error().Err(a.cause).Str("kind", o.Kind).Msg("humanizer init failed")
		return a
	}
	log.Info().Str("kind", o.Kind).Str("model", o.Model).Msg("humanizer ready")
	return a
}

func open(ctx context.Context, o Options) *Adapter {
	if o.Kind == KindDisabled {
		return Unavailable(perr.Unavailablef("paraphraser disabled"))
	}
	if o.URL == "" {
		return Unavailable(perr.Unavailablef("paraphraser url not configured"))
	}
	if err := bind.Validate(o); err != nil {
		return Unavailable(perr.Wrapf(err, perr.ErrorCodeUnavailable, "paraphraser options invalid"))
	}

	var b Backend
	switch o.Kind {
	case KindOpenAI:
		b = NewOpenAIBackend(o)
	default:
		b = NewHTTPBackend(o)
	}
	a := New(b)
	if !o.Warmup {
		return a
	}
	if _, err := b.Generate(ctx, warmupText, a.cfg); err != nil {
		return Unavailable(perr.Wrapf(err, perr.ErrorCodeUnavailable, "paraphraser warmup failed"))
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

// Decoding returns the fixed decoding setup
func (a *Adapter) Decoding() DecodingConfig { return a.cfg }

// Humanize returns the first generated rewrite of text. Any length is accepted
func (a *Adapter) Humanize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	if err := a.Ready(); err != nil {
		metrics.ObserveBackend(metricName, metrics.OutcomeUnavailable, start)
		return "", err
	}

	seqs, err := a.backend.Generate(ctx, text, a.cfg)
	if err != nil {
		metrics.ObserveBackend(metricName, metrics.OutcomeError, start)
		logger.C(ctx).Error().Err(err).Str("backend", a.backend.Name()).Msg("paraphraser call failed")
		return "", perr.Generationf("%v", err)
	}
	if len(seqs) == 0 {
		metrics.ObserveBackend(metricName, metrics.OutcomeError, start)
		return "", perr.Generationf("empty generation")
	}
	metrics.ObserveBackend(metricName, metrics.OutcomeOK, start)
	return seqs[0], nil
}

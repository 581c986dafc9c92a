// Package classifier adapts an external text classification model to a single raw AI probability.
// The model is a process-wide capability: it is opened once at startup and, if that fails,
// stays unavailable until the process restarts
package classifier

import (
	"context"
	"encoding/json"
	"time"

	"authorcheck/internal/platform/config"
)

// Backend is a text classification capability returning the model's raw label distribution
type Backend interface {
	Name() string
	Classify(ctx context.Context, text string) (json.RawMessage, error)
}

// Defaults
const (
	DefaultModel    = "openai-community/roberta-base-openai-detector"
	DefaultMaxChars = 512
	DefaultTimeout  = 30 * time.Second
)

// MsgUnavailable is reported to callers while the classifier is absent
const MsgUnavailable = "Detector failed."

// Options configures Open
type Options struct {
	URL      string        `json:"url"       validate:"required,endpoint"`
	Token    string        `json:"-"`
	Model    string        `json:"model"     validate:"required"`
	Timeout  time.Duration `json:"timeout"   validate:"gt=0"`
	MaxChars int           `json:"max_chars" validate:"min=1"`
	Warmup   bool          `json:"warmup"`
}

// FromConfig reads CORE_CLASSIFIER_* keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_CLASSIFIER_")
	return Options{
		URL:      c.MayString("URL", ""),
		Token:    c.MayString("TOKEN", ""),
		Model:    c.MayString("MODEL", DefaultModel),
		Timeout:  c.MayDuration("TIMEOUT", DefaultTimeout),
		MaxChars: c.MayInt("MAX_CHARS", DefaultMaxChars),
		Warmup:   c.MayBool("WARMUP", true),
	}
}

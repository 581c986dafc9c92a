// Package paraphraser adapts an external sequence-to-sequence model that rewrites text.
// Decoding is fixed per process; callers only supply the text
package paraphraser

import (
	"context"
	"time"

	"authorcheck/internal/platform/config"
)

// Backend generates paraphrases of text under cfg
type Backend interface {
	Name() string
	Generate(ctx context.Context, text string, cfg DecodingConfig) ([]string, error)
}

// Backend kinds
const (
	KindHF       = "hf"
	KindOpenAI   = "openai"
	KindDisabled = "disabled"
)

// Defaults
const (
	DefaultModel       = "humarin/chatgpt_paraphraser_on_T5_base"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOpenAIURL   = "https://api.openai.com/v1"
	DefaultTimeout     = 60 * time.Second
)

// MsgUnavailable is reported to callers while the paraphraser is absent
const MsgUnavailable = "Humanizer failed."

// Options configures Open
type Options struct {
	Kind    string        `json:"kind"    validate:"oneof=hf openai"`
	URL     string        `json:"url"     validate:"required,endpoint"`
	Token   string        `json:"-"`
	Model   string        `json:"model"   validate:"required"`
	Timeout time.Duration `json:"timeout" validate:"gt=0"`
	Warmup  bool          `json:"warmup"`
}

// FromConfig reads CORE_PARAPHRASER_* keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_PARAPHRASER_")
	o := Options{
		Kind:    c.MayEnum("KIND", KindHF, KindHF, KindOpenAI, KindDisabled),
		URL:     c.MayString("URL", ""),
		Token:   c.MayString("TOKEN", ""),
		Model:   c.MayString("MODEL", ""),
		Timeout: c.MayDuration("TIMEOUT", DefaultTimeout),
		Warmup:  c.MayBool("WARMUP", true),
	}
	return o.withDefaults()
}

// withDefaults fills kind specific model and endpoint defaults
func (o Options) withDefaults() Options {
	if o.Kind == "" {
		o.Kind = KindHF
	}
	switch o.Kind {
	case KindOpenAI:
		if o.Model == "" {
			o.Model = DefaultOpenAIModel
		}
		if o.URL == "" {
			o.URL = DefaultOpenAIURL
		}
	case KindHF:
		if o.Model == "" {
			o.Model = DefaultModel
		}
	}
	return o
}

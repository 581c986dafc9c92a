package paraphraser

import (
	"context"
	"encoding/json"

	"authorcheck/internal/adapters/inference"
	perr "authorcheck/internal/platform/errors"
)

// HTTPBackend calls a Hugging Face style text2text-generation endpoint
type HTTPBackend struct {
	client *inference.Client
	model  string
}

type generateRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters DecodingConfig `json:"parameters"`
}

type generated struct {
	GeneratedText string `json:"generated_text"`
}

// NewHTTPBackend builds the backend from o
func NewHTTPBackend(o Options) *HTTPBackend {
	return &HTTPBackend{
		client: inference.NewClient("paraphraser", inference.Options{
			URL:     o.URL,
			Token:   o.Token,
			Timeout: o.Timeout,
		}),
		model: o.Model,
	}
}

// Name returns the model id
func (b *HTTPBackend) Name() string { return b.model }

// Generate posts text with cfg and returns the generated sequences in order
func (b *HTTPBackend) Generate(ctx context.Context, text string, cfg DecodingConfig) ([]string, error) {
	raw, err := b.client.Post(ctx, generateRequest{Inputs: text, Parameters: cfg})
	if err != nil {
		return nil, err
	}
	var out []generated
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "unexpected paraphraser output")
	}
	seqs := make([]string, 0, len(out))
	for _, g := range out {
		seqs = append(seqs, g.GeneratedText)
	}
	return seqs, nil
}

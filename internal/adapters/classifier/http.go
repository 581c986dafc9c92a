package classifier

import (
	"context"
	"encoding/json"

	"authorcheck/internal/adapters/inference"
)

// HTTPBackend calls a Hugging Face style text-classification endpoint
type HTTPBackend struct {
	client *inference.Client
	model  string
}

type classifyRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters classifyParams `json:"parameters"`
}

// TopK stays null so the endpoint returns every label, not just the best one
type classifyParams struct {
	TopK *int `json:"top_k"`
}

// NewHTTPBackend builds the backend from o
func NewHTTPBackend(o Options) *HTTPBackend {
	return &HTTPBackend{
		client: inference.NewClient("classifier", inference.Options{
			URL:     o.URL,
			Token:   o.Token,
			Timeout: o.Timeout,
		}),
		model: o.Model,
	}
}

// Name returns the model id
func (b *HTTPBackend) Name() string { return b.model }

// Classify posts text and returns the raw label distribution
func (b *HTTPBackend) Classify(ctx context.Context, text string) (json.RawMessage, error) {
	return b.client.Post(ctx, classifyRequest{Inputs: text})
}

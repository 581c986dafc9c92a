package paraphraser

import (
	"context"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// systemPrompt asks a chat model for a single faithful rewrite
const systemPrompt = "Paraphrase the user's text so it reads as natural human writing. " +
	"Keep the meaning, facts and language. Reply with the rewritten text only."

// OpenAIBackend paraphrases through an OpenAI compatible chat completions API.
// Beam search and n-gram blocking have no chat equivalent and are not sent
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds the backend from o
func NewOpenAIBackend(o Options) *OpenAIBackend {
	cfg := openai.DefaultConfig(o.Token)
	if o.URL != "" {
		cfg.BaseURL = o.URL
	}
	cfg.HTTPClient = &http.Client{Timeout: o.Timeout}
	return &OpenAIBackend{client: openai.NewClientWithConfig(cfg), model: o.Model}
}

// Name returns the model id
func (b *OpenAIBackend) Name() string { return b.model }

// Generate requests NumReturnSequences completions of text
func (b *OpenAIBackend) Generate(ctx context.Context, text string, cfg DecodingConfig) ([]string, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature:         float32(cfg.Temperature),
		MaxCompletionTokens: cfg.MaxLength,
		N:                   cfg.NumReturnSequences,
	}
	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Choices))
	for _, c := range resp.Choices {
		out = append(out, c.Message.Content)
	}
	return out, nil
}

package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classification runs with a deterministic-leaning temperature.
const classifyTemperature = 0.1

// RawItem is one unvalidated result entry from a classifier reply.
// Relevance stays a json.Number until the Validator checks integrality.
type RawItem struct {
	ID        string      `json:"id"`
	Type      string      `json:"tipo"`
	Category  string      `json:"categoria"`
	Summary   string      `json:"summary"`
	Relevance json.Number `json:"relevance"`
}

// Classifier sends one rendered chunk prompt to the external endpoint
// and returns the raw result items.
type Classifier interface {
	Classify(ctx context.Context, prompt string, cred Credential) ([]RawItem, error)
}

// Client implements Classifier against an OpenAI-compatible
// chat-completions API (Groq in production).
type Client struct {
	host      string
	model     string
	maxTokens int
	logger    *slog.Logger
}

var _ Classifier = (*Client)(nil)

// NewClient creates a classification client for the given endpoint.
func NewClient(host, model string, maxTokens int) *Client {
	return &Client{
		host:      host,
		model:     model,
		maxTokens: maxTokens,
		logger:    slog.Default().With("component", "classify-client"),
	}
}

// Classify issues one synchronous request with the rotated credential
// and extracts the results payload from the free-form reply.
func (c *Client) Classify(ctx context.Context, prompt string, cred Credential) ([]RawItem, error) {
	model, err := openai.New(
		openai.WithBaseURL(c.host),
		openai.WithToken(cred.Key),
		openai.WithModel(c.model),
	)
	if err != nil {
		return nil, err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := model.GenerateContent(ctx, content,
		llms.WithTemperature(classifyTemperature),
		llms.WithMaxTokens(c.maxTokens),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, ErrEmptyResponse
	}

	items, err := parseReply(response.Choices[0].Content)
	if err != nil {
		c.logger.Warn("unusable classifier reply", "model", c.model, "err", err)
		return nil, err
	}
	return items, nil
}

// parseReply extracts the results array from the reply text. The
// endpoint may wrap the JSON object in prose or markdown fences.
func parseReply(text string) ([]RawItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	// Strip markdown code fences if present
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	payload, ok := ExtractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformedReply)
	}

	var reply struct {
		Results []RawItem `json:"results"`
	}
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if reply.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", ErrMalformedReply)
	}

	return reply.Results, nil
}

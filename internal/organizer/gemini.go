package organizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

// GeminiGenerator asks Gemini for a strict JSON reply matching responseSchema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errorvalues.ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.New("creating gemini client error: " + err.Error())
	}
	return &GeminiGenerator{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: SystemInstruction}},
			},
		},
	}, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tasks": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"text":     {Type: genai.TypeString},
						"category": {Type: genai.TypeString},
					},
					Required: []string{"text", "category"},
				},
			},
			"summary": {Type: genai.TypeString},
		},
		Required: []string{"tasks", "summary"},
	}
}

func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}

// Unavailable is used when the organizer can't be configured. Every call fails
// with the configuration error instead of taking the process down.
type Unavailable struct {
	Err error
}

func (u Unavailable) GenerateJSON(context.Context, string) (string, error) {
	if u.Err == nil {
		return "", errorvalues.ErrMissingAPIKey
	}
	return "", u.Err
}

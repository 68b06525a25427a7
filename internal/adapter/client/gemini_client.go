package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model produced no text
var ErrEmptyResponse = errors.New("model returned an empty response")

// GeminiConfig configures the Gemini client
type GeminiConfig struct {
	Model string
	// ThinkingLevel is one of minimal, low, medium, high
	ThinkingLevel string
	// Timeout bounds a single call; zero leaves the call unbounded
	Timeout time.Duration
	BaseURL string
	// APIKey is normally empty so the SDK reads GEMINI_API_KEY or GOOGLE_API_KEY
	APIKey     string
	HTTPClient *http.Client
}

// GeminiClient issues schema-constrained JSON generations against the Gemini API
type GeminiClient struct {
	models        *genai.Models
	model         string
	thinkingLevel genai.ThinkingLevel
	timeout       time.Duration
}

// classificationSchema constrains the model output to the two classification fields
var classificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"incident_type": {
			Type:        genai.TypeString,
			Description: "The classified incident type.",
		},
		"urgency_level": {
			Type:        genai.TypeString,
			Description: "The classified urgency level.",
		},
	},
	Required:         []string{"incident_type", "urgency_level"},
	PropertyOrdering: []string{"incident_type", "urgency_level"},
}

// NewGeminiClient creates a new Gemini client. It fails when no API key is available.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	c, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	level := cfg.ThinkingLevel
	if level == "" {
		level = "low"
	}

	return &GeminiClient{
		models:        c.Models,
		model:         cfg.Model,
		thinkingLevel: genai.ThinkingLevel(strings.ToUpper(level)),
		timeout:       cfg.Timeout,
	}, nil
}

// Model returns the configured model identifier
func (c *GeminiClient) Model() string {
	return c.model
}

// GenerateClassification sends the prompt and returns the raw JSON text of the answer
func (c *GeminiClient) GenerateClassification(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), c.generateConfig())
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked by provider: %s", resp.PromptFeedback.BlockReason)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (c *GeminiClient) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   classificationSchema,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingLevel: c.thinkingLevel,
		},
	}
}

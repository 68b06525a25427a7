package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/service"
)

// GeminiClassifier adapts GeminiClient to the Classifier interface
type GeminiClassifier struct {
	client *GeminiClient
}

// NewGeminiClassifier creates a new GeminiClassifier
func NewGeminiClassifier(client *GeminiClient) service.Classifier {
	return &GeminiClassifier{client: client}
}

// Classify asks the model to categorise the prompt and decodes its JSON answer
func (c *GeminiClassifier) Classify(ctx context.Context, prompt string) (*entity.Classification, error) {
	text, err := c.client.GenerateClassification(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result entity.Classification
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	return &result, nil
}

// Model returns the model identifier of the underlying client
func (c *GeminiClassifier) Model() string {
	return c.client.Model()
}

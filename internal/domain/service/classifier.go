package service

import (
	"context"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
)

// Classifier defines the port to the generative model that categorises complaints
type Classifier interface {
	// Classify sends a fully built prompt and returns the parsed classification
	Classify(ctx context.Context, prompt string) (*entity.Classification, error)

	// Model returns the configured model identifier
	Model() string
}

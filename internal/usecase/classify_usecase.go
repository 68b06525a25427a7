package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/service"
)

// ErrNoClassifier is reported when the usecase was built without a provider
var ErrNoClassifier = errors.New("classifier not configured")

// ClassifyInput represents the request body of a classify call.
// Text is a pointer so a missing field is rejected while an empty string is accepted.
type ClassifyInput struct {
	Text *string `json:"text" binding:"required"`
}

// ErrorPayload is the body returned for a failed classification
type ErrorPayload struct {
	Error string `json:"error"`
}

// ClassifyOutput holds either a classification or a failure message
type ClassifyOutput struct {
	Classification *entity.Classification
	Err            string
}

// Failed reports whether the output is the error variant
func (o *ClassifyOutput) Failed() bool {
	return o.Classification == nil
}

// Payload returns the value to serialise for the caller
func (o *ClassifyOutput) Payload() interface{} {
	if o.Failed() {
		return ErrorPayload{Error: o.Err}
	}
	return o.Classification
}

// ClassificationObserver receives the outcome of every classify call
type ClassificationObserver interface {
	ObserveClassification(result *entity.Classification, providerElapsed time.Duration)
}

// ClassifyUsecase defines the interface for complaint classification
type ClassifyUsecase interface {
	// Classify never returns an error: failures are folded into the output
	Classify(ctx context.Context, req *entity.ComplaintRequest) *ClassifyOutput
}

type classifyUsecase struct {
	classifier       service.Classifier
	observer         ClassificationObserver
	logger           *zap.Logger
	validateTaxonomy bool
}

// NewClassifyUsecase creates a new classify usecase. observer and logger may be nil.
func NewClassifyUsecase(classifier service.Classifier, observer ClassificationObserver, logger *zap.Logger, validateTaxonomy bool) ClassifyUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &classifyUsecase{
		classifier:       classifier,
		observer:         observer,
		logger:           logger,
		validateTaxonomy: validateTaxonomy,
	}
}

func (u *classifyUsecase) Classify(ctx context.Context, req *entity.ComplaintRequest) (out *ClassifyOutput) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("Classification panicked", zap.Any("panic", r))
			out = &ClassifyOutput{Err: fmt.Sprintf("classification failed: %v", r)}
		}
		if u.observer != nil {
			u.observer.ObserveClassification(out.Classification, time.Since(start))
		}
	}()

	// The provider call runs to completion even if the caller goes away
	result, err := u.classify(context.WithoutCancel(ctx), req.Text)
	if err != nil {
		u.logger.Warn("Classification failed",
			zap.Error(err),
			zap.Int("text_length", len(req.Text)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return &ClassifyOutput{Err: err.Error()}
	}

	u.logger.Debug("Complaint classified",
		zap.String("incident_type", string(result.IncidentType)),
		zap.String("urgency_level", string(result.UrgencyLevel)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &ClassifyOutput{Classification: result}
}

func (u *classifyUsecase) classify(ctx context.Context, text string) (*entity.Classification, error) {
	if u.classifier == nil {
		return nil, ErrNoClassifier
	}

	result, err := u.classifier.Classify(ctx, BuildPrompt(text))
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, entity.ErrMissingField
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	if u.validateTaxonomy {
		if err := result.Normalize(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

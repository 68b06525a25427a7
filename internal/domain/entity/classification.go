package entity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation errors for provider output
var (
	ErrMissingField    = errors.New("classification is missing a required field")
	ErrOutsideTaxonomy = errors.New("classification value outside taxonomy")
)

// ComplaintRequest is the raw complaint submitted by a caller
type ComplaintRequest struct {
	Text string `json:"text"`
}

// Classification is the structured result produced by the model
type Classification struct {
	IncidentType IncidentType `json:"incident_type" validate:"required"`
	UrgencyLevel UrgencyLevel `json:"urgency_level" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that both fields are present
func (c *Classification) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, verrs[0].Field())
	}
	return err
}

// Normalize rewrites both values to their canonical taxonomy spelling.
// It fails if either value has no match.
func (c *Classification) Normalize() error {
	incident, ok := ParseIncidentType(string(c.IncidentType))
	if !ok {
		return fmt.Errorf("%w: incident_type %q", ErrOutsideTaxonomy, c.IncidentType)
	}
	urgency, ok := ParseUrgencyLevel(string(c.UrgencyLevel))
	if !ok {
		return fmt.Errorf("%w: urgency_level %q", ErrOutsideTaxonomy, c.UrgencyLevel)
	}

	c.IncidentType = incident
	c.UrgencyLevel = urgency
	return nil
}

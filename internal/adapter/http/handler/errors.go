package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapBindError maps a request binding error to an HTTP error response.
// Every binding failure is a 422, matching schema validation of the request model.
func MapBindError(err error) ErrorResponse {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		verrs     validator.ValidationErrors
	)

	message := err.Error()
	switch {
	case errors.Is(err, io.EOF):
		message = "request body is empty"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		message = "request body is not valid JSON"
	case errors.As(err, &typeErr):
		message = fmt.Sprintf("field '%s' must be a %s", typeErr.Field, typeErr.Type.String())
	case errors.As(err, &verrs) && len(verrs) > 0:
		message = fmt.Sprintf("field '%s' is %s", strings.ToLower(verrs[0].Field()), verrs[0].Tag())
	}

	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    message,
	}
}

// HandleBindError sends the mapped binding error as a JSON error response
func HandleBindError(c *gin.Context, err error) {
	errResp := MapBindError(err)
	respondError(c, errResp.StatusCode, errResp.Message)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/barangay-ai/api-service/internal/usecase"
)

// respondPayload writes payload as JSON without HTML escaping so
// taxonomy values such as "Fire & Disaster" reach callers unaltered
func respondPayload(c *gin.Context, status int, payload interface{}) {
	c.PureJSON(status, payload)
}

func respondError(c *gin.Context, status int, message string) {
	respondPayload(c, status, usecase.ErrorPayload{Error: message})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
	"github.com/ressKim-io/barangay-ai/api-service/internal/usecase"
)

// ClassifyHandler handles complaint classification requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{classifyUC: classifyUC}
}

// Classify handles POST /api/classify.
// Classification failures are answered with 200 and an error body.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleBindError(c, err)
		return
	}

	output := h.classifyUC.Classify(c.Request.Context(), &entity.ComplaintRequest{Text: *input.Text})

	respondPayload(c, http.StatusOK, output.Payload())
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeStatus is the static landing payload
type HomeStatus struct {
	Status   string `json:"status"`
	Testing  string `json:"testing"`
	Endpoint string `json:"endpoint"`
}

var homeStatus = HomeStatus{
	Status:   "Barangay AI API is Live",
	Testing:  "Go to /docs to test it interactively",
	Endpoint: "/api/classify (POST)",
}

// HomeHandler serves the landing route
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET /
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, homeStatus)
}

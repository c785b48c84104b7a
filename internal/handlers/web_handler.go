package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const appTitle = "Appointment Booking Agent"

// WebHandler serves the chat page. The engine must have the templates from
// internal/web installed.
type WebHandler struct {
	version string
}

func NewWebHandler(version string) *WebHandler {
	return &WebHandler{version: version}
}

func (h *WebHandler) App(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Title":   appTitle,
		"Version": h.version,
	})
}

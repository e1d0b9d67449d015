package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the success body of the public endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body; Error is always safe to show to a visitor
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	reqID := c.GetString("RequestID")

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: reqID,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	reqID := c.GetString("RequestID")

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: reqID,
	})
}

package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

// ErrorBody is the structured error payload: message, timestamp and status
// code travel in the body so clients do not have to inspect headers.
type ErrorBody struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
	Details    any       `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: ErrorBody{
			Code:       errorCode,
			Message:    message,
			StatusCode: status,
			Timestamp:  time.Now().UTC(),
			Details:    details,
		},
	})
}

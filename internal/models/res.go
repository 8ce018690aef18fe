package models

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the client-facing error JSON shape.
type ErrorBody struct {
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// RespondWithError converts an error into the matching client response.
// Business errors keep their status and message; everything else is logged
// and returned as an opaque 500.
func RespondWithError(c *gin.Context, logger *slog.Logger, err error) {
	if appErr, ok := AsAppError(err); ok {
		c.JSON(appErr.Status, ErrorBody{
			Message:       appErr.Message,
			MissingFields: appErr.MissingFields,
		})
		return
	}

	requestID, _ := c.Get("request_id")
	logger.Error("request failed",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Internal server error"})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/lingua/internal/chat"
	"github.com/joshua-takyi/lingua/internal/middleware"
	"github.com/joshua-takyi/lingua/internal/models"
)

// GetChatToken mints a chat provider token for the authenticated user.
// Unlike the upsert path, a failure here is a hard error.
func GetChatToken(client *chat.Client, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		token, err := client.GenerateToken(current.ID.Hex())
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

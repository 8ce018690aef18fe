package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/lingua/internal/middleware"
	"github.com/joshua-takyi/lingua/internal/models"
	"github.com/joshua-takyi/lingua/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetRecommendedUsers(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		users, err := ss.RecommendedUsers(c.Request.Context(), current)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func GetMyFriends(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		friends, err := ss.Friends(c.Request.Context(), current)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, friends)
	}
}

func SendFriendRequest(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		recipientID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Message: "Invalid user ID"})
			return
		}

		if err := ss.SendFriendRequest(c.Request.Context(), current.ID, recipientID); err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend request sent successfully"})
	}
}

func AcceptFriendRequest(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Message: "Invalid request ID"})
			return
		}

		if err := ss.AcceptFriendRequest(c.Request.Context(), requestID, current.ID); err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted successfully"})
	}
}

func GetFriendRequests(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		incoming, accepted, err := ss.FriendRequests(c.Request.Context(), current.ID)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"incomingReqs": incoming,
			"acceptedReqs": accepted,
		})
	}
}

func GetOutgoingFriendRequests(ss *services.SocialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		outgoing, err := ss.OutgoingFriendRequests(c.Request.Context(), current.ID)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"outgoingReqs": outgoing})
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/lingua/internal/config"
	"github.com/joshua-takyi/lingua/internal/helpers"
	"github.com/joshua-takyi/lingua/internal/middleware"
	"github.com/joshua-takyi/lingua/internal/models"
	"github.com/joshua-takyi/lingua/internal/services"
)

func Signup(as *services.AuthService, cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"fullName"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Message: "Invalid request payload"})
			return
		}

		user, err := as.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}

		token, err := helpers.GenerateSessionToken(cfg.JWTSecret, user.ID.Hex())
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		helpers.SetSessionCookie(c, token, cfg.IsProduction())

		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

func Login(as *services.AuthService, cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Message: "Invalid request payload"})
			return
		}

		user, err := as.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}

		token, err := helpers.GenerateSessionToken(cfg.JWTSecret, user.ID.Hex())
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}
		helpers.SetSessionCookie(c, token, cfg.IsProduction())

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// Logout clears the session cookie. The token is stateless, so there is
// nothing to revoke server-side.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.ClearSessionCookie(c, cfg.IsProduction())
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
	}
}

func Onboard(as *services.AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}

		var req struct {
			FullName         string `json:"fullName"`
			Bio              string `json:"bio"`
			NativeLanguage   string `json:"nativeLanguage"`
			LearningLanguage string `json:"learningLanguage"`
			Location         string `json:"location"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Message: "Invalid request payload"})
			return
		}

		user, err := as.Onboard(c.Request.Context(), current.ID, models.OnboardProfile{
			FullName:         req.FullName,
			Bio:              req.Bio,
			NativeLanguage:   req.NativeLanguage,
			LearningLanguage: req.LearningLanguage,
			Location:         req.Location,
		})
		if err != nil {
			models.RespondWithError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// Me returns the identity the route guard resolved.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Message: "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

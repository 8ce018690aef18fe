package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/lingua/internal/container"
	"github.com/joshua-takyi/lingua/internal/handlers"
	"github.com/joshua-takyi/lingua/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "lingua-api",
		})
	})

	guard := middleware.AuthMiddleware(c.Config.JWTSecret, c.Repo, c.Logger)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", handlers.Signup(c.AuthService, c.Config, c.Logger))
		auth.POST("/login", handlers.Login(c.AuthService, c.Config, c.Logger))
		auth.POST("/logout", handlers.Logout(c.Config))

		auth.POST("/onboarding", guard, handlers.Onboard(c.AuthService, c.Logger))
		auth.GET("/me", guard, handlers.Me())
	}

	users := r.Group("/users")
	users.Use(guard)
	{
		users.GET("", handlers.GetRecommendedUsers(c.SocialService, c.Logger))
		users.GET("/friends", handlers.GetMyFriends(c.SocialService, c.Logger))

		users.POST("/friend-request/:id", handlers.SendFriendRequest(c.SocialService, c.Logger))
		users.PUT("/friend-request/:id/accept", handlers.AcceptFriendRequest(c.SocialService, c.Logger))

		users.GET("/friend-requests", handlers.GetFriendRequests(c.SocialService, c.Logger))
		users.GET("/outgoing-friend-requests", handlers.GetOutgoingFriendRequests(c.SocialService, c.Logger))
	}

	chatRoutes := r.Group("/chat")
	chatRoutes.Use(guard)
	{
		chatRoutes.GET("/token", handlers.GetChatToken(c.ChatClient, c.Logger))
	}

	return r
}

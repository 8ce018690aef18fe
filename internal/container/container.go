package container

import (
	"log/slog"

	"github.com/joshua-takyi/lingua/internal/chat"
	"github.com/joshua-takyi/lingua/internal/config"
	"github.com/joshua-takyi/lingua/internal/models"
	"github.com/joshua-takyi/lingua/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	ChatClient    *chat.Client
	Repo          *models.MongodbRepo
	AuthService   *services.AuthService
	SocialService *services.SocialService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	chatClient *chat.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	authService := services.NewAuthService(repo, chatClient, logger)
	socialService := services.NewSocialService(repo, repo)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		MongoDBClient: mongoDBClient,
		ChatClient:    chatClient,
		Repo:          repo,
		AuthService:   authService,
		SocialService: socialService,
	}
}

package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joshua-takyi/lingua/internal/helpers"
	"github.com/joshua-takyi/lingua/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatProvider is the slice of the external chat API this backend consumes.
type ChatProvider interface {
	UpsertUser(ctx context.Context, id, name, image string) error
}

type AuthService struct {
	userRepo models.UserRepo
	chat     ChatProvider
	logger   *slog.Logger
}

func NewAuthService(userRepo models.UserRepo, chat ChatProvider, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		chat:     chat,
		logger:   logger,
	}
}

func (as *AuthService) Signup(ctx context.Context, email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)

	if email == "" || password == "" || fullName == "" {
		return nil, models.NewValidationError("All fields are required")
	}
	if len(password) < 6 {
		return nil, models.NewValidationError("Password must be at least 6 characters long")
	}
	if err := models.Validate.Var(email, "email"); err != nil {
		return nil, models.NewValidationError("Invalid email format")
	}

	existing, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	user := &models.User{
		Email:      email,
		Password:   password,
		FullName:   fullName,
		ProfilePic: helpers.RandomAvatarURL(),
	}
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	created, err := as.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	as.syncChatUser(ctx, created)

	created.Password = ""
	return created, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	if !user.MatchPassword(password) {
		return nil, models.NewInvalidCredentialsError("Invalid password")
	}

	user.Password = ""
	return user, nil
}

func (as *AuthService) Onboard(ctx context.Context, userID primitive.ObjectID, profile models.OnboardProfile) (*models.User, error) {
	missing := []string{}
	if strings.TrimSpace(profile.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(profile.Bio) == "" {
		missing = append(missing, "bio")
	}
	if strings.TrimSpace(profile.NativeLanguage) == "" {
		missing = append(missing, "nativeLanguage")
	}
	if strings.TrimSpace(profile.LearningLanguage) == "" {
		missing = append(missing, "learningLanguage")
	}
	if strings.TrimSpace(profile.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	updated, err := as.userRepo.OnboardUser(ctx, userID, profile)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	as.syncChatUser(ctx, updated)

	return updated, nil
}

// syncChatUser mirrors the user into the chat provider. Failures are logged
// and swallowed; signup and onboarding succeed regardless.
func (as *AuthService) syncChatUser(ctx context.Context, user *models.User) {
	if err := as.chat.UpsertUser(ctx, user.ID.Hex(), user.FullName, user.ProfilePic); err != nil {
		as.logger.Warn("chat user upsert failed",
			"user_id", user.ID.Hex(),
			"error", err,
		)
	}
}

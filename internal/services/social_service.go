package services

import (
	"context"
	"errors"

	"github.com/joshua-takyi/lingua/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialService struct {
	userRepo    models.UserRepo
	requestRepo models.FriendRequestRepo
}

func NewSocialService(userRepo models.UserRepo, requestRepo models.FriendRequestRepo) *SocialService {
	return &SocialService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// RecommendedUsers lists onboarded users the current user is not already
// connected to.
func (ss *SocialService) RecommendedUsers(ctx context.Context, current *models.User) ([]*models.User, error) {
	return ss.userRepo.ListRecommended(ctx, current.ID, current.Friends)
}

// Friends returns the current user's friends in the preview projection.
func (ss *SocialService) Friends(ctx context.Context, current *models.User) ([]models.UserPreview, error) {
	return ss.userRepo.GetPreviews(ctx, current.Friends)
}

func (ss *SocialService) SendFriendRequest(ctx context.Context, sender, recipientID primitive.ObjectID) error {
	if sender == recipientID {
		return models.NewConflictError("You cannot send a friend request to yourself")
	}

	recipient, err := ss.userRepo.GetUserByID(ctx, recipientID)
	if err != nil {
		return err
	}
	if recipient == nil {
		return models.NewNotFoundError("Recipient not found")
	}

	if recipient.HasFriend(sender) {
		return models.NewConflictError("You are already friends with this user")
	}

	exists, err := ss.requestRepo.FriendRequestExists(ctx, sender, recipientID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("Friend request already exists")
	}

	_, err = ss.requestRepo.CreateFriendRequest(ctx, sender, recipientID)
	return err
}

// AcceptFriendRequest is recipient-only. The store applies the status flip
// and both friend-list insertions as one unit.
func (ss *SocialService) AcceptFriendRequest(ctx context.Context, requestID, actingUser primitive.ObjectID) error {
	req, err := ss.requestRepo.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return models.NewNotFoundError("Friend request not found")
	}

	if req.Recipient != actingUser {
		return models.NewForbiddenError("You are not authorized to accept this friend request")
	}

	if err := ss.requestRepo.AcceptFriendRequest(ctx, req); err != nil {
		if errors.Is(err, models.ErrRequestNotPending) {
			return models.NewNotFoundError("Friend request already handled")
		}
		return err
	}
	return nil
}

// FriendRequests returns requests awaiting the user's decision alongside the
// user's own requests that were accepted.
func (ss *SocialService) FriendRequests(ctx context.Context, userID primitive.ObjectID) (incoming, accepted []models.FriendRequestView, err error) {
	incoming, err = ss.requestRepo.ListIncoming(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	accepted, err = ss.requestRepo.ListAcceptedBySender(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return incoming, accepted, nil
}

func (ss *SocialService) OutgoingFriendRequests(ctx context.Context, userID primitive.ObjectID) ([]models.FriendRequestView, error) {
	return ss.requestRepo.ListOutgoing(ctx, userID)
}

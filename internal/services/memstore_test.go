package services

import (
	"context"
	"sync"
	"time"

	"github.com/joshua-takyi/lingua/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory stand-in for the Mongo repo, implementing both
// store interfaces the way MongodbRepo does.
type memStore struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*models.User
	requests map[primitive.ObjectID]*models.FriendRequest
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[primitive.ObjectID]*models.User{},
		requests: map[primitive.ObjectID]*models.FriendRequest{},
	}
}

func copyUser(u *models.User) *models.User {
	clone := *u
	clone.Friends = append([]primitive.ObjectID{}, u.Friends...)
	return &clone
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Friends == nil {
		user.Friends = []primitive.ObjectID{}
	}
	m.users[user.ID] = copyUser(user)
	return copyUser(user), nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (m *memStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	clone := copyUser(u)
	clone.Password = "" // projection excludes the hash
	return clone, nil
}

func (m *memStore) OnboardUser(_ context.Context, id primitive.ObjectID, profile models.OnboardProfile) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	u.FullName = profile.FullName
	u.Bio = profile.Bio
	u.NativeLanguage = profile.NativeLanguage
	u.LearningLanguage = profile.LearningLanguage
	u.Location = profile.Location
	u.IsOnboarded = true
	u.UpdatedAt = time.Now()

	clone := copyUser(u)
	clone.Password = ""
	return clone, nil
}

func (m *memStore) ListRecommended(_ context.Context, userID primitive.ObjectID, friends []primitive.ObjectID) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	excluded := map[primitive.ObjectID]bool{userID: true}
	for _, f := range friends {
		excluded[f] = true
	}

	users := []*models.User{}
	for _, u := range m.users {
		if excluded[u.ID] || !u.IsOnboarded {
			continue
		}
		clone := copyUser(u)
		clone.Password = ""
		users = append(users, clone)
	}
	return users, nil
}

func (m *memStore) GetPreviews(_ context.Context, ids []primitive.ObjectID) ([]models.UserPreview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.previewsLocked(ids), nil
}

func (m *memStore) previewsLocked(ids []primitive.ObjectID) []models.UserPreview {
	previews := []models.UserPreview{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			previews = append(previews, models.UserPreview{
				ID:               u.ID,
				FullName:         u.FullName,
				ProfilePic:       u.ProfilePic,
				NativeLanguage:   u.NativeLanguage,
				LearningLanguage: u.LearningLanguage,
			})
		}
	}
	return previews
}

func (m *memStore) CreateFriendRequest(_ context.Context, sender, recipient primitive.ObjectID) (*models.FriendRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	req := &models.FriendRequest{
		ID:        primitive.NewObjectID(),
		Sender:    sender,
		Recipient: recipient,
		Status:    models.FriendRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.requests[req.ID] = req
	clone := *req
	return &clone, nil
}

func (m *memStore) GetFriendRequestByID(_ context.Context, id primitive.ObjectID) (*models.FriendRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *req
	return &clone, nil
}

func (m *memStore) FriendRequestExists(_ context.Context, a, b primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, req := range m.requests {
		if (req.Sender == a && req.Recipient == b) || (req.Sender == b && req.Recipient == a) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) AcceptFriendRequest(_ context.Context, req *models.FriendRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.requests[req.ID]
	if !ok || stored.Status != models.FriendRequestPending {
		return models.ErrRequestNotPending
	}
	stored.Status = models.FriendRequestAccepted
	stored.UpdatedAt = time.Now()

	m.addFriendLocked(stored.Sender, stored.Recipient)
	m.addFriendLocked(stored.Recipient, stored.Sender)
	return nil
}

func (m *memStore) addFriendLocked(userID, friendID primitive.ObjectID) {
	u, ok := m.users[userID]
	if !ok {
		return
	}
	for _, f := range u.Friends {
		if f == friendID {
			return
		}
	}
	u.Friends = append(u.Friends, friendID)
}

func (m *memStore) ListIncoming(_ context.Context, recipient primitive.ObjectID) ([]models.FriendRequestView, error) {
	return m.listViews(func(req *models.FriendRequest) bool {
		return req.Recipient == recipient && req.Status == models.FriendRequestPending
	}), nil
}

func (m *memStore) ListAcceptedBySender(_ context.Context, sender primitive.ObjectID) ([]models.FriendRequestView, error) {
	return m.listViews(func(req *models.FriendRequest) bool {
		return req.Sender == sender && req.Status == models.FriendRequestAccepted
	}), nil
}

func (m *memStore) ListOutgoing(_ context.Context, sender primitive.ObjectID) ([]models.FriendRequestView, error) {
	return m.listViews(func(req *models.FriendRequest) bool {
		return req.Sender == sender && req.Status == models.FriendRequestPending
	}), nil
}

func (m *memStore) listViews(match func(*models.FriendRequest) bool) []models.FriendRequestView {
	m.mu.Lock()
	defer m.mu.Unlock()

	views := []models.FriendRequestView{}
	for _, req := range m.requests {
		if !match(req) {
			continue
		}
		view := models.FriendRequestView{
			ID:        req.ID,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		}
		if p := m.previewsLocked([]primitive.ObjectID{req.Sender}); len(p) == 1 {
			view.Sender = p[0]
		}
		if p := m.previewsLocked([]primitive.ObjectID{req.Recipient}); len(p) == 1 {
			view.Recipient = p[0]
		}
		views = append(views, view)
	}
	return views
}

// fakeChat records upserts and can be told to fail.
type fakeChat struct {
	mu      sync.Mutex
	upserts []string
	err     error
}

func (f *fakeChat) UpsertUser(_ context.Context, id, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, id)
	return f.err
}

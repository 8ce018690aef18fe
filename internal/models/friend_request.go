package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	// FriendRequestDeclined is reserved; no operation sets it yet.
	FriendRequestDeclined FriendRequestStatus = "declined"
)

type FriendRequest struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Sender    primitive.ObjectID  `bson:"sender" json:"sender"`
	Recipient primitive.ObjectID  `bson:"recipient" json:"recipient"`
	Status    FriendRequestStatus `bson:"status" json:"status"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// FriendRequestView is a FriendRequest with both parties expanded to their
// preview projection. The expansion is an explicit second fetch, not a
// store-level join.
type FriendRequestView struct {
	ID        primitive.ObjectID  `json:"id"`
	Sender    UserPreview         `json:"sender"`
	Recipient UserPreview         `json:"recipient"`
	Status    FriendRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

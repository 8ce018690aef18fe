package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email            string               `bson:"email" json:"email" validate:"required,email"`
	Password         string               `bson:"password" json:"-"`
	FullName         string               `bson:"fullName" json:"fullName" validate:"required"`
	ProfilePic       string               `bson:"profilePic" json:"profilePic"`
	Bio              string               `bson:"bio" json:"bio"`
	NativeLanguage   string               `bson:"nativeLanguage" json:"nativeLanguage"`
	LearningLanguage string               `bson:"learningLanguage" json:"learningLanguage"`
	Location         string               `bson:"location" json:"location"`
	IsOnboarded      bool                 `bson:"isOnboarded" json:"isOnboarded"`
	Friends          []primitive.ObjectID `bson:"friends" json:"friends"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// UserPreview is the field allowlist used when a user appears inside
// someone else's friend list or friend request.
type UserPreview struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	FullName         string             `bson:"fullName" json:"fullName"`
	ProfilePic       string             `bson:"profilePic" json:"profilePic"`
	NativeLanguage   string             `bson:"nativeLanguage" json:"nativeLanguage"`
	LearningLanguage string             `bson:"learningLanguage" json:"learningLanguage"`
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// MatchPassword reports whether the candidate matches the stored hash.
func (u *User) MatchPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}

// HasFriend reports whether the given user is already in the friends set.
func (u *User) HasFriend(id primitive.ObjectID) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}

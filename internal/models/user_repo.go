package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	OnboardUser(ctx context.Context, id primitive.ObjectID, profile OnboardProfile) (*User, error)
	ListRecommended(ctx context.Context, userID primitive.ObjectID, friends []primitive.ObjectID) ([]*User, error)
	GetPreviews(ctx context.Context, ids []primitive.ObjectID) ([]UserPreview, error)
}

// OnboardProfile holds the five profile fields set during onboarding.
type OnboardProfile struct {
	FullName         string
	Bio              string
	NativeLanguage   string
	LearningLanguage string
	Location         string
}

// passwordless excludes the password hash from any read that leaves the
// credential path.
var passwordless = options.FindOne().SetProjection(bson.M{"password": 0})

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Friends == nil {
		user.Friends = []primitive.ObjectID{}
	}

	res, err := mdb.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Email already exists")
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetUserByEmail returns (nil, nil) when no user matches. The password hash
// is included; this is the credential-verification read path.
func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := mdb.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID returns (nil, nil) when no user matches. The password hash is
// excluded from the projection.
func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := mdb.users().FindOne(ctx, bson.M{"_id": id}, passwordless).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}
	return &user, nil
}

// OnboardUser sets the profile fields and flips isOnboarded in a single
// update. Returns (nil, nil) when the user no longer exists.
func (mdb *MongodbRepo) OnboardUser(ctx context.Context, id primitive.ObjectID, profile OnboardProfile) (*User, error) {
	update := bson.M{
		"$set": bson.M{
			"fullName":         profile.FullName,
			"bio":              profile.Bio,
			"nativeLanguage":   profile.NativeLanguage,
			"learningLanguage": profile.LearningLanguage,
			"location":         profile.Location,
			"isOnboarded":      true,
			"updatedAt":        time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var updated User
	err := mdb.users().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error onboarding user: %w", err)
	}
	return &updated, nil
}

// ListRecommended returns onboarded users excluding the given user and
// everyone already in their friends set.
func (mdb *MongodbRepo) ListRecommended(ctx context.Context, userID primitive.ObjectID, friends []primitive.ObjectID) ([]*User, error) {
	filter := bson.M{
		"$and": []bson.M{
			{"_id": bson.M{"$ne": userID}},
			{"_id": bson.M{"$nin": friends}},
			{"isOnboarded": true},
		},
	}

	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := mdb.users().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recommended users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*User{}
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, &user)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return users, nil
}

// GetPreviews fetches the preview projection for the given user ids. This is
// the explicit join step behind friend lists and request expansion.
func (mdb *MongodbRepo) GetPreviews(ctx context.Context, ids []primitive.ObjectID) ([]UserPreview, error) {
	if len(ids) == 0 {
		return []UserPreview{}, nil
	}

	opts := options.Find().SetProjection(bson.M{
		"fullName":         1,
		"profilePic":       1,
		"nativeLanguage":   1,
		"learningLanguage": 1,
	})

	cursor, err := mdb.users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding user previews: %w", err)
	}
	defer cursor.Close(ctx)

	previews := []UserPreview{}
	for cursor.Next(ctx) {
		var preview UserPreview
		if err := cursor.Decode(&preview); err != nil {
			return nil, fmt.Errorf("error decoding user preview: %w", err)
		}
		previews = append(previews, preview)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return previews, nil
}

// EnsureUserIndexes creates the unique email index backing the duplicate
// signup check.
func (mdb *MongodbRepo) EnsureUserIndexes(ctx context.Context) error {
	_, err := mdb.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating email index: %w", err)
	}
	return nil
}

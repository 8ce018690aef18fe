package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRequestNotPending is returned when an accept races with another accept
// or hits an already-accepted request.
var ErrRequestNotPending = errors.New("friend request is not pending")

type FriendRequestRepo interface {
	CreateFriendRequest(ctx context.Context, sender, recipient primitive.ObjectID) (*FriendRequest, error)
	GetFriendRequestByID(ctx context.Context, id primitive.ObjectID) (*FriendRequest, error)
	FriendRequestExists(ctx context.Context, a, b primitive.ObjectID) (bool, error)
	AcceptFriendRequest(ctx context.Context, req *FriendRequest) error
	ListIncoming(ctx context.Context, recipient primitive.ObjectID) ([]FriendRequestView, error)
	ListAcceptedBySender(ctx context.Context, sender primitive.ObjectID) ([]FriendRequestView, error)
	ListOutgoing(ctx context.Context, sender primitive.ObjectID) ([]FriendRequestView, error)
}

func (mdb *MongodbRepo) CreateFriendRequest(ctx context.Context, sender, recipient primitive.ObjectID) (*FriendRequest, error) {
	now := time.Now()
	req := &FriendRequest{
		Sender:    sender,
		Recipient: recipient,
		Status:    FriendRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := mdb.friendRequests().InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error inserting friend request: %w", err)
	}

	req.ID = res.InsertedID.(primitive.ObjectID)
	return req, nil
}

// GetFriendRequestByID returns (nil, nil) when no request matches.
func (mdb *MongodbRepo) GetFriendRequestByID(ctx context.Context, id primitive.ObjectID) (*FriendRequest, error) {
	var req FriendRequest
	err := mdb.friendRequests().FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding friend request: %w", err)
	}
	return &req, nil
}

// FriendRequestExists reports whether a request exists between the pair in
// either direction, regardless of status.
func (mdb *MongodbRepo) FriendRequestExists(ctx context.Context, a, b primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"sender": a, "recipient": b},
			{"sender": b, "recipient": a},
		},
	}

	count, err := mdb.friendRequests().CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error counting friend requests: %w", err)
	}
	return count > 0, nil
}

// AcceptFriendRequest marks the request accepted and inserts each party into
// the other's friends set, all inside one transaction so a failure between
// writes cannot leave the graph asymmetric. $addToSet keeps the friend-list
// writes idempotent; the pending-status filter makes a double accept fail
// with ErrRequestNotPending.
func (mdb *MongodbRepo) AcceptFriendRequest(ctx context.Context, req *FriendRequest) error {
	session, err := mdb.mongodbClient.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now()

		res, err := mdb.friendRequests().UpdateOne(sc,
			bson.M{"_id": req.ID, "status": FriendRequestPending},
			bson.M{"$set": bson.M{"status": FriendRequestAccepted, "updatedAt": now}},
		)
		if err != nil {
			return nil, fmt.Errorf("error updating friend request: %w", err)
		}
		if res.ModifiedCount == 0 {
			return nil, ErrRequestNotPending
		}

		if _, err := mdb.users().UpdateOne(sc,
			bson.M{"_id": req.Sender},
			bson.M{"$addToSet": bson.M{"friends": req.Recipient}, "$set": bson.M{"updatedAt": now}},
		); err != nil {
			return nil, fmt.Errorf("error updating sender friends: %w", err)
		}

		if _, err := mdb.users().UpdateOne(sc,
			bson.M{"_id": req.Recipient},
			bson.M{"$addToSet": bson.M{"friends": req.Sender}, "$set": bson.M{"updatedAt": now}},
		); err != nil {
			return nil, fmt.Errorf("error updating recipient friends: %w", err)
		}

		return nil, nil
	})
	return err
}

func (mdb *MongodbRepo) ListIncoming(ctx context.Context, recipient primitive.ObjectID) ([]FriendRequestView, error) {
	return mdb.listRequestViews(ctx, bson.M{"recipient": recipient, "status": FriendRequestPending})
}

func (mdb *MongodbRepo) ListAcceptedBySender(ctx context.Context, sender primitive.ObjectID) ([]FriendRequestView, error) {
	return mdb.listRequestViews(ctx, bson.M{"sender": sender, "status": FriendRequestAccepted})
}

func (mdb *MongodbRepo) ListOutgoing(ctx context.Context, sender primitive.ObjectID) ([]FriendRequestView, error) {
	return mdb.listRequestViews(ctx, bson.M{"sender": sender, "status": FriendRequestPending})
}

// listRequestViews runs the request query, then expands both parties with a
// single preview fetch.
func (mdb *MongodbRepo) listRequestViews(ctx context.Context, filter bson.M) ([]FriendRequestView, error) {
	cursor, err := mdb.friendRequests().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding friend requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []FriendRequest{}
	for cursor.Next(ctx) {
		var req FriendRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("error decoding friend request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(requests)*2)
	seen := map[primitive.ObjectID]bool{}
	for _, req := range requests {
		for _, id := range []primitive.ObjectID{req.Sender, req.Recipient} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	previews, err := mdb.GetPreviews(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]UserPreview, len(previews))
	for _, p := range previews {
		byID[p.ID] = p
	}

	views := make([]FriendRequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, FriendRequestView{
			ID:        req.ID,
			Sender:    byID[req.Sender],
			Recipient: byID[req.Recipient],
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		})
	}

	return views, nil
}

package models

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	DBName            = "lingua"
	UsersCol          = "users"
	FriendRequestsCol = "friend_requests"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) users() *mongo.Collection {
	return mdb.mongodbClient.Database(DBName).Collection(UsersCol)
}

func (mdb *MongodbRepo) friendRequests() *mongo.Collection {
	return mdb.mongodbClient.Database(DBName).Collection(FriendRequestsCol)
}

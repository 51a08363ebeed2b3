package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
)

// UserRepository defines the interface for profile operations.
type UserRepository interface {
	// UpsertUser writes the whole profile document keyed by uid.
	UpsertUser(ctx context.Context, user *model.User) error

	// UpdateProfile replaces name and email of an existing profile.
	// It returns mongo.ErrNoDocuments when no profile has this uid.
	UpdateProfile(ctx context.Context, uid string, params UpdateProfileParams) error
}

// UpdateProfileParams defines the fields written by a profile edit.
type UpdateProfileParams struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

const userCollection = "users"

type userMongoRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewUserMongoRepository(db *mongo.Database, timeout time.Duration) UserRepository {
	return &userMongoRepository{db: db, timeout: timeout}
}

func (r *userMongoRepository) UpsertUser(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Collection(userCollection).ReplaceOne(
		ctx,
		bson.M{"_id": user.UID},
		user,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *userMongoRepository) UpdateProfile(ctx context.Context, uid string, params UpdateProfileParams) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"_id": uid},
		bson.M{"$set": params},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{collection: db.Collection("users")}
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Username == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("username and password required")
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

// FindByUsername returns (nil, nil) when no user matches.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

// UpdateFields applies a partial update and stamps updated_at.
func (r *UserRepo) UpdateFields(ctx context.Context, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "user_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}

	return nil
}

// RecordLogin stamps the last login time and device. Best-effort caller side.
func (r *UserRepo) RecordLogin(ctx context.Context, userID, device string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"last_login_at":     time.Now(),
			"last_login_device": device,
		}})
	return err
}

func (r *UserRepo) SetTwoFactor(ctx context.Context, userID, secret string, enabled bool) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"two_factor_secret":  secret,
			"two_factor_enabled": enabled,
			"updated_at":         time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "two_factor_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}

	return nil
}

// List returns a page of users ordered by creation time, newest first. Admin
// only; this is the one read that is not scoped to an owning user.
func (r *UserRepo) List(ctx context.Context, page, limit int) ([]*model.User, int64, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepo) Delete(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "user_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}

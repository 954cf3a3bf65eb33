package repository

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FocusSessionRepo struct {
	collection *mongo.Collection
}

func NewFocusSessionRepo(db *mongo.Database) *FocusSessionRepo {
	return &FocusSessionRepo{collection: db.Collection("focus_sessions")}
}

func (r *FocusSessionRepo) Create(ctx context.Context, session *model.FocusSession) error {
	timer := utils.TrackDBOperation("insert", "focus_sessions")
	defer timer.ObserveDuration()

	if session.UserID == "" {
		return errors.New("user ID is required")
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// FindActive returns the user's active session, or (nil, nil) when there is
// none. The at-most-one-active invariant is checked here before creation, not
// enforced transactionally.
func (r *FocusSessionRepo) FindActive(ctx context.Context, userID string) (*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "focus_sessions")
	defer timer.ObserveDuration()

	var session model.FocusSession
	err := r.collection.FindOne(ctx, bson.M{
		"user_id": userID,
		"status":  model.SessionActive,
	}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *FocusSessionRepo) FindByID(ctx context.Context, sessionID, userID string) (*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "focus_sessions")
	defer timer.ObserveDuration()

	var session model.FocusSession
	err := r.collection.FindOne(ctx, bson.M{
		"session_id": sessionID,
		"user_id":    userID,
	}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// ListFilter narrows the session listing; zero values mean no filter.
type ListFilter struct {
	Status    string
	StartDate time.Time
	EndDate   time.Time
	Tags      []string
	Page      int
	Limit     int
}

// List returns a page of the user's sessions newest-first plus the total
// matching count for pagination metadata.
func (r *FocusSessionRepo) List(ctx context.Context, userID string, filter ListFilter) ([]*model.FocusSession, int64, error) {
	timer := utils.TrackDBOperation("find", "focus_sessions")
	defer timer.ObserveDuration()

	query := bson.M{"user_id": userID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.StartDate.IsZero() || !filter.EndDate.IsZero() {
		window := bson.M{}
		if !filter.StartDate.IsZero() {
			window["$gte"] = filter.StartDate
		}
		if !filter.EndDate.IsZero() {
			window["$lt"] = filter.EndDate
		}
		query["start_time"] = window
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// UpdateStatus is the only mutation a session supports after creation.
func (r *FocusSessionRepo) UpdateStatus(ctx context.Context, sessionID, userID, status string) error {
	timer := utils.TrackDBOperation("update", "focus_sessions")
	defer timer.ObserveDuration()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "user_id": userID},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "session_status_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("session not found")
	}

	return nil
}

// DeleteByUser removes all of a user's sessions. Admin cascade only.
func (r *FocusSessionRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "focus_sessions")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

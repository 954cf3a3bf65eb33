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

type MeetingRepo struct {
	collection *mongo.Collection
}

func NewMeetingRepo(db *mongo.Database) *MeetingRepo {
	return &MeetingRepo{collection: db.Collection("meetings")}
}

func (r *MeetingRepo) Create(ctx context.Context, meeting *model.Meeting) error {
	timer := utils.TrackDBOperation("insert", "meetings")
	defer timer.ObserveDuration()

	if meeting.UserID == "" {
		return errors.New("user ID is required")
	}

	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, meeting)
	return err
}

func (r *MeetingRepo) FindByID(ctx context.Context, meetingID, userID string) (*model.Meeting, error) {
	timer := utils.TrackDBOperation("find", "meetings")
	defer timer.ObserveDuration()

	var meeting model.Meeting
	err := r.collection.FindOne(ctx, bson.M{
		"meeting_id": meetingID,
		"user_id":    userID,
	}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &meeting, nil
}

// FindAtSlot looks up a meeting occupying the (date, time) pair, used for the
// write-time conflict check. excludeID skips the meeting being updated.
func (r *MeetingRepo) FindAtSlot(ctx context.Context, userID, date, timeOfDay, excludeID string) (*model.Meeting, error) {
	timer := utils.TrackDBOperation("find", "meetings")
	defer timer.ObserveDuration()

	query := bson.M{
		"user_id": userID,
		"date":    date,
		"time":    timeOfDay,
	}
	if excludeID != "" {
		query["meeting_id"] = bson.M{"$ne": excludeID}
	}

	var meeting model.Meeting
	err := r.collection.FindOne(ctx, query).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &meeting, nil
}

// ListByUser returns all of a user's meetings ordered by date then time.
func (r *MeetingRepo) ListByUser(ctx context.Context, userID string) ([]*model.Meeting, error) {
	timer := utils.TrackDBOperation("find", "meetings")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "time", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []*model.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepo) Update(ctx context.Context, meeting *model.Meeting) error {
	timer := utils.TrackDBOperation("update", "meetings")
	defer timer.ObserveDuration()

	meeting.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"meeting_id": meeting.MeetingID, "user_id": meeting.UserID},
		bson.M{"$set": bson.M{
			"title":            meeting.Title,
			"date":             meeting.Date,
			"time":             meeting.Time,
			"reminder_minutes": meeting.ReminderMinutes,
			"notes":            meeting.Notes,
			"metadata":         meeting.Metadata,
			"updated_at":       meeting.UpdatedAt,
		}})
	if err != nil {
		utils.TrackError("database", "meeting_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("meeting not found")
	}

	return nil
}

func (r *MeetingRepo) Delete(ctx context.Context, meetingID, userID string) error {
	timer := utils.TrackDBOperation("delete", "meetings")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteOne(ctx, bson.M{
		"meeting_id": meetingID,
		"user_id":    userID,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("meeting not found")
	}

	return nil
}

// DeleteByUser removes all of a user's meetings. Admin cascade only.
func (r *MeetingRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "meetings")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

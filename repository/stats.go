package repository

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepo struct {
	collection *mongo.Collection
}

func NewStatsRepo(db *mongo.Database) *StatsRepo {
	return &StatsRepo{collection: db.Collection("stats")}
}

func (r *StatsRepo) Find(ctx context.Context, userID string) (*model.UserStats, error) {
	timer := utils.TrackDBOperation("find", "stats")
	defer timer.ObserveDuration()

	var stats model.UserStats
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &stats, nil
}

func (r *StatsRepo) Insert(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("insert", "stats")
	defer timer.ObserveDuration()

	_, err := r.collection.InsertOne(ctx, stats)
	return err
}

// Upsert writes the whole stats document. Read-modify-write, no atomicity
// between a session write and the stats write that follows it.
func (r *StatsRepo) Upsert(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("update", "stats")
	defer timer.ObserveDuration()

	stats.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": stats.UserID}, stats, opts)
	if err != nil {
		utils.TrackError("database", "stats_update_failed")
	}
	return err
}

func (r *StatsRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "stats")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

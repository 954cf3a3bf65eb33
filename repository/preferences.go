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

type PreferencesRepo struct {
	collection *mongo.Collection
}

func NewPreferencesRepo(db *mongo.Database) *PreferencesRepo {
	return &PreferencesRepo{collection: db.Collection("preferences")}
}

// Find returns (nil, nil) when the user has no preferences row yet; the
// usecase seeds defaults lazily in that case.
func (r *PreferencesRepo) Find(ctx context.Context, userID string) (*model.UserPreferences, error) {
	timer := utils.TrackDBOperation("find", "preferences")
	defer timer.ObserveDuration()

	var prefs model.UserPreferences
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &prefs, nil
}

func (r *PreferencesRepo) Insert(ctx context.Context, prefs *model.UserPreferences) error {
	timer := utils.TrackDBOperation("insert", "preferences")
	defer timer.ObserveDuration()

	_, err := r.collection.InsertOne(ctx, prefs)
	return err
}

// Update writes the whole preferences document, creating it if absent. The
// upsert covers users whose lazy seed insert failed earlier.
func (r *PreferencesRepo) Update(ctx context.Context, prefs *model.UserPreferences) error {
	timer := utils.TrackDBOperation("update", "preferences")
	defer timer.ObserveDuration()

	prefs.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": prefs.UserID}, prefs, opts)
	if err != nil {
		utils.TrackError("database", "preferences_update_failed")
	}
	return err
}

func (r *PreferencesRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "preferences")
	defer timer.ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

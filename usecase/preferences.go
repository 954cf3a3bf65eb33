package usecase

import (
	"context"
	"log"

	"main/dto"
	"main/model"
)

type PreferencesRepository interface {
	Find(ctx context.Context, userID string) (*model.UserPreferences, error)
	Insert(ctx context.Context, prefs *model.UserPreferences) error
	Update(ctx context.Context, prefs *model.UserPreferences) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type PreferencesService struct {
	Prefs PreferencesRepository
}

// Get returns the user's preferences, lazily creating the default row on the
// first read. If the insert of the default row fails the defaults are still
// returned; the next Update upserts the row, so the failure is self-healing.
func (s *PreferencesService) Get(ctx context.Context, userID string) (*model.UserPreferences, error) {
	prefs, err := s.Prefs.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = model.DefaultPreferences(userID)
	if err := s.Prefs.Insert(ctx, prefs); err != nil {
		log.Printf("failed to seed default preferences for user %s: %v", userID, err)
	}

	return prefs, nil
}

func (s *PreferencesService) Update(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*model.UserPreferences, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FocusMinutes != nil {
		prefs.FocusMinutes = *req.FocusMinutes
	}
	if req.ShortBreakMinutes != nil {
		prefs.ShortBreakMinutes = *req.ShortBreakMinutes
	}
	if req.LongBreakMinutes != nil {
		prefs.LongBreakMinutes = *req.LongBreakMinutes
	}
	if req.SessionsUntilLongRest != nil {
		prefs.SessionsUntilLongRest = *req.SessionsUntilLongRest
	}
	if req.AutoStartBreaks != nil {
		prefs.AutoStartBreaks = *req.AutoStartBreaks
	}
	if req.AutoStartFocus != nil {
		prefs.AutoStartFocus = *req.AutoStartFocus
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.SoundEnabled != nil {
		prefs.SoundEnabled = *req.SoundEnabled
	}
	if req.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := s.Prefs.Update(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

package model

import "time"

type UserPreferences struct {
	UserID                string    `bson:"user_id" json:"user_id"`
	FocusMinutes          int       `bson:"focus_minutes" json:"focus_minutes"`
	ShortBreakMinutes     int       `bson:"short_break_minutes" json:"short_break_minutes"`
	LongBreakMinutes      int       `bson:"long_break_minutes" json:"long_break_minutes"`
	SessionsUntilLongRest int       `bson:"sessions_until_long_rest" json:"sessions_until_long_rest"`
	AutoStartBreaks       bool      `bson:"auto_start_breaks" json:"auto_start_breaks"`
	AutoStartFocus        bool      `bson:"auto_start_focus" json:"auto_start_focus"`
	Theme                 string    `bson:"theme" json:"theme"`
	SoundEnabled          bool      `bson:"sound_enabled" json:"sound_enabled"`
	NotificationsEnabled  bool      `bson:"notifications_enabled" json:"notifications_enabled"`
	CreatedAt             time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultPreferences returns the row seeded on registration or lazily on the
// first preferences read.
func DefaultPreferences(userID string) *UserPreferences {
	now := time.Now()
	return &UserPreferences{
		UserID:                userID,
		FocusMinutes:          25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		SessionsUntilLongRest: 4,
		AutoStartBreaks:       false,
		AutoStartFocus:        false,
		Theme:                 "system",
		SoundEnabled:          true,
		NotificationsEnabled:  true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

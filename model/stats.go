package model

import "time"

// UserStats holds running counters updated incrementally whenever a focus
// session is created or completed. There is no atomicity between the session
// write and the stats write; the counters are best-effort bookkeeping.
type UserStats struct {
	UserID            string    `bson:"user_id" json:"user_id"`
	TotalSessions     int       `bson:"total_sessions" json:"total_sessions"`
	CompletedSessions int       `bson:"completed_sessions" json:"completed_sessions"`
	TotalMinutes      int       `bson:"total_minutes" json:"total_minutes"`
	CompletedMinutes  int       `bson:"completed_minutes" json:"completed_minutes"`
	CurrentStreakDays int       `bson:"current_streak_days" json:"current_streak_days"`
	LongestStreakDays int       `bson:"longest_streak_days" json:"longest_streak_days"`
	LastSessionDate   string    `bson:"last_session_date" json:"last_session_date,omitempty"` // YYYY-MM-DD
	CompletionRate    float64   `bson:"completion_rate" json:"completion_rate"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

func NewUserStats(userID string) *UserStats {
	return &UserStats{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
}

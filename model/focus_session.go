package model

import "time"

// Focus session statuses. A session is created as scheduled or active and the
// only mutation afterwards is the status transition.
const (
	SessionScheduled = "scheduled"
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionStopped   = "stopped"
)

type FocusSession struct {
	SessionID       string    `bson:"session_id" json:"session_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Title           string    `bson:"title" json:"title"`
	Goal            string    `bson:"goal" json:"goal,omitempty"`
	Tags            []string  `bson:"tags" json:"tags,omitempty"`
	Location        string    `bson:"location" json:"location,omitempty"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	StartTime       time.Time `bson:"start_time" json:"start_time"`
	EndTime         time.Time `bson:"end_time" json:"end_time"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

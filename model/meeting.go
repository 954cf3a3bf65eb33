package model

import "time"

type Meeting struct {
	MeetingID       string            `bson:"meeting_id" json:"meeting_id"`
	UserID          string            `bson:"user_id" json:"user_id"`
	Title           string            `bson:"title" json:"title"`
	Date            string            `bson:"date" json:"date"` // YYYY-MM-DD
	Time            string            `bson:"time" json:"time"` // HH:MM, 24h
	ReminderMinutes int               `bson:"reminder_minutes" json:"reminder_minutes"`
	Notes           string            `bson:"notes" json:"notes,omitempty"`
	Metadata        map[string]string `bson:"metadata" json:"metadata,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

// StartsAt combines the date and time fields into a wall-clock instant in loc.
func (m *Meeting) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", m.Date+" "+m.Time, loc)
}

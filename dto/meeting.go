package dto

import "main/model"

type CreateMeetingRequest struct {
	Title           string            `json:"title" binding:"required,max=200"`
	Date            string            `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string            `json:"time" binding:"required,datetime=15:04"`
	ReminderMinutes int               `json:"reminder_minutes" binding:"omitempty,min=0,max=1440"`
	Notes           string            `json:"notes" binding:"omitempty,max=2000"`
	Metadata        map[string]string `json:"metadata" binding:"omitempty,max=20"`
}

// UpdateMeetingRequest uses pointers so an absent field is distinguishable
// from a zero value; the slot-conflict check only runs when date or time
// actually change.
type UpdateMeetingRequest struct {
	Title           *string           `json:"title" binding:"omitempty,max=200"`
	Date            *string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time            *string           `json:"time" binding:"omitempty,datetime=15:04"`
	ReminderMinutes *int              `json:"reminder_minutes" binding:"omitempty,min=0,max=1440"`
	Notes           *string           `json:"notes" binding:"omitempty,max=2000"`
	Metadata        map[string]string `json:"metadata" binding:"omitempty,max=20"`
}

type UpcomingMeetingsQuery struct {
	Hours int `form:"hours" binding:"omitempty,min=1,max=168"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (q *UpcomingMeetingsQuery) Normalize() {
	if q.Hours < 1 {
		q.Hours = 24
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}

// UpcomingMeeting augments a meeting with the countdown fields the UI renders.
type UpcomingMeeting struct {
	model.Meeting
	MinutesUntil  int    `json:"minutes_until"`
	HoursUntil    int    `json:"hours_until"`
	IsToday       bool   `json:"is_today"`
	IsSoon        bool   `json:"is_soon"`
	TimeUntilText string `json:"time_until_text"`
}

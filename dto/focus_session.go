package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type CreateFocusSessionRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Goal            string   `json:"goal" binding:"omitempty,max=500"`
	Tags            []string `json:"tags" binding:"omitempty,max=10,dive,max=30"`
	Location        string   `json:"location" binding:"omitempty,max=100"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=1,max=480"`
	ScheduledTime   string   `json:"scheduled_time" binding:"omitempty"` // RFC3339, defaults to now
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed stopped"`
}

// FocusSessionQuery carries the list filters. Bound from the query string;
// Normalize applies the documented pagination defaults.
type FocusSessionQuery struct {
	Page      int      `form:"page" binding:"omitempty,min=1"`
	Limit     int      `form:"limit" binding:"omitempty,min=1"`
	Status    string   `form:"status" binding:"omitempty,oneof=scheduled active completed stopped"`
	StartDate string   `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string   `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Tags      []string `form:"tags" binding:"omitempty,max=10"`
}

func (q *FocusSessionQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

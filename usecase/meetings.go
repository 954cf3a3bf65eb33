package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"main/dto"
	"main/model"

	"github.com/google/uuid"
)

var ErrMeetingNotFound = errors.New("meeting not found")

// SlotConflictError reports the meeting already occupying a (date, time) pair.
type SlotConflictError struct {
	Conflicting *model.Meeting
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("a meeting already exists at %s %s", e.Conflicting.Date, e.Conflicting.Time)
}

type MeetingRepository interface {
	Create(ctx context.Context, meeting *model.Meeting) error
	FindByID(ctx context.Context, meetingID, userID string) (*model.Meeting, error)
	FindAtSlot(ctx context.Context, userID, date, timeOfDay, excludeID string) (*model.Meeting, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Meeting, error)
	Update(ctx context.Context, meeting *model.Meeting) error
	Delete(ctx context.Context, meetingID, userID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type MeetingService struct {
	Meetings MeetingRepository
}

func (s *MeetingService) Create(ctx context.Context, userID string, req dto.CreateMeetingRequest) (*model.Meeting, error) {
	existing, err := s.Meetings.FindAtSlot(ctx, userID, req.Date, req.Time, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &SlotConflictError{Conflicting: existing}
	}

	reminder := req.ReminderMinutes
	if reminder == 0 {
		reminder = 15
	}

	meeting := &model.Meeting{
		MeetingID:       uuid.New().String(),
		UserID:          userID,
		Title:           req.Title,
		Date:            req.Date,
		Time:            req.Time,
		ReminderMinutes: reminder,
		Notes:           req.Notes,
		Metadata:        req.Metadata,
	}

	if err := s.Meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}

	return meeting, nil
}

func (s *MeetingService) Get(ctx context.Context, userID, meetingID string) (*model.Meeting, error) {
	meeting, err := s.Meetings.FindByID(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	return meeting, nil
}

func (s *MeetingService) List(ctx context.Context, userID string) ([]*model.Meeting, error) {
	return s.Meetings.ListByUser(ctx, userID)
}

// Update applies a partial update. The slot-conflict check only runs when the
// date or time actually change.
func (s *MeetingService) Update(ctx context.Context, userID, meetingID string, req dto.UpdateMeetingRequest) (*model.Meeting, error) {
	meeting, err := s.Get(ctx, userID, meetingID)
	if err != nil {
		return nil, err
	}

	newDate := meeting.Date
	newTime := meeting.Time
	if req.Date != nil {
		newDate = *req.Date
	}
	if req.Time != nil {
		newTime = *req.Time
	}

	if newDate != meeting.Date || newTime != meeting.Time {
		existing, err := s.Meetings.FindAtSlot(ctx, userID, newDate, newTime, meetingID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &SlotConflictError{Conflicting: existing}
		}
	}

	meeting.Date = newDate
	meeting.Time = newTime
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.ReminderMinutes != nil {
		meeting.ReminderMinutes = *req.ReminderMinutes
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}
	if req.Metadata != nil {
		meeting.Metadata = req.Metadata
	}

	if err := s.Meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	return meeting, nil
}

func (s *MeetingService) Delete(ctx context.Context, userID, meetingID string) error {
	if _, err := s.Get(ctx, userID, meetingID); err != nil {
		return err
	}
	return s.Meetings.Delete(ctx, meetingID, userID)
}

// Upcoming returns the meetings starting inside [now, now+hours), soonest
// first, capped at limit, each augmented with the countdown fields.
func (s *MeetingService) Upcoming(ctx context.Context, userID string, hours, limit int) ([]dto.UpcomingMeeting, error) {
	meetings, err := s.Meetings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	windowEnd := now.Add(time.Duration(hours) * time.Hour)

	upcoming := make([]dto.UpcomingMeeting, 0, len(meetings))
	for _, m := range meetings {
		startsAt, err := m.StartsAt(now.Location())
		if err != nil {
			continue // malformed rows are skipped, not fatal
		}
		if startsAt.Before(now) || !startsAt.Before(windowEnd) {
			continue
		}
		upcoming = append(upcoming, annotateMeeting(m, startsAt, now))
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].MinutesUntil < upcoming[j].MinutesUntil
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming, nil
}

func annotateMeeting(m *model.Meeting, startsAt, now time.Time) dto.UpcomingMeeting {
	until := startsAt.Sub(now)
	minutes := int(until.Minutes())

	return dto.UpcomingMeeting{
		Meeting:       *m,
		MinutesUntil:  minutes,
		HoursUntil:    minutes / 60,
		IsToday:       sameDay(startsAt, now),
		IsSoon:        minutes <= m.ReminderMinutes,
		TimeUntilText: timeUntilText(until),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// timeUntilText renders the human-readable countdown: "Past due", "Now",
// "<m> minute(s)", "<h> hour(s)" or "<h>h <m>m".
func timeUntilText(until time.Duration) string {
	if until < 0 {
		return "Past due"
	}

	minutes := int(until.Minutes())
	if minutes < 1 {
		return "Now"
	}
	if minutes < 60 {
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rem)
}

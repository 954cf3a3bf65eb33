package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

var (
	ErrActiveSessionExists = errors.New("an active session already exists")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrBadScheduledTime    = errors.New("scheduled_time must be RFC3339")
)

type FocusSessionRepository interface {
	Create(ctx context.Context, session *model.FocusSession) error
	FindActive(ctx context.Context, userID string) (*model.FocusSession, error)
	FindByID(ctx context.Context, sessionID, userID string) (*model.FocusSession, error)
	List(ctx context.Context, userID string, filter repository.ListFilter) ([]*model.FocusSession, int64, error)
	UpdateStatus(ctx context.Context, sessionID, userID, status string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type FocusService struct {
	Sessions FocusSessionRepository
	Stats    *StatsService
}

// Create starts a new timer run. Rejects when the user already has an active
// session; the check is a read before the write, not a transactional
// guarantee. end_time is start + duration, and a future start yields a
// scheduled session instead of an active one.
func (s *FocusService) Create(ctx context.Context, userID string, req dto.CreateFocusSessionRequest) (*model.FocusSession, error) {
	now := timeNow()

	start := now
	if req.ScheduledTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledTime)
		if err != nil {
			return nil, ErrBadScheduledTime
		}
		start = parsed
	}

	active, err := s.Sessions.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrActiveSessionExists
	}

	session := &model.FocusSession{
		SessionID:       uuid.New().String(),
		UserID:          userID,
		Title:           req.Title,
		Goal:            req.Goal,
		Tags:            req.Tags,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Status:          statusForStart(start, now),
	}

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	utils.TrackFocusSessionOperation("create")
	s.Stats.RecordSessionCreated(ctx, userID, req.DurationMinutes)

	return session, nil
}

func statusForStart(start, now time.Time) string {
	if start.After(now) {
		return model.SessionScheduled
	}
	return model.SessionActive
}

func (s *FocusService) Get(ctx context.Context, userID, sessionID string) (*model.FocusSession, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *FocusService) List(ctx context.Context, userID string, query dto.FocusSessionQuery) ([]*model.FocusSession, int64, error) {
	filter := repository.ListFilter{
		Status: query.Status,
		Tags:   query.Tags,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	if query.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", query.StartDate, time.Local)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid start_date: %w", err)
		}
		filter.StartDate = start
	}
	if query.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", query.EndDate, time.Local)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid end_date: %w", err)
		}
		// end_date is inclusive, window upper bound is the following midnight
		filter.EndDate = end.AddDate(0, 0, 1)
	}

	return s.Sessions.List(ctx, userID, filter)
}

// UpdateStatus transitions a scheduled or active session to completed or
// stopped. Completion feeds the stats counters best-effort.
func (s *FocusService) UpdateStatus(ctx context.Context, userID, sessionID, status string) (*model.FocusSession, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != model.SessionScheduled && session.Status != model.SessionActive {
		return nil, ErrInvalidTransition
	}

	if err := s.Sessions.UpdateStatus(ctx, sessionID, userID, status); err != nil {
		return nil, err
	}
	session.Status = status
	session.UpdatedAt = timeNow()

	switch status {
	case model.SessionCompleted:
		utils.TrackFocusSessionOperation("complete")
		s.Stats.RecordSessionCompleted(ctx, userID, session.DurationMinutes, timeNow())
	case model.SessionStopped:
		utils.TrackFocusSessionOperation("stop")
	}

	return session, nil
}

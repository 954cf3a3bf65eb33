package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
)

type fakeFocusSessionRepo struct {
	sessions []*model.FocusSession
	active   *model.FocusSession
}

func (f *fakeFocusSessionRepo) Create(ctx context.Context, s *model.FocusSession) error {
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeFocusSessionRepo) FindActive(ctx context.Context, userID string) (*model.FocusSession, error) {
	return f.active, nil
}

func (f *fakeFocusSessionRepo) FindByID(ctx context.Context, sessionID, userID string) (*model.FocusSession, error) {
	for _, s := range f.sessions {
		if s.SessionID == sessionID && s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeFocusSessionRepo) List(ctx context.Context, userID string, filter repository.ListFilter) ([]*model.FocusSession, int64, error) {
	return f.sessions, int64(len(f.sessions)), nil
}

func (f *fakeFocusSessionRepo) UpdateStatus(ctx context.Context, sessionID, userID, status string) error {
	for _, s := range f.sessions {
		if s.SessionID == sessionID && s.UserID == userID {
			s.Status = status
		}
	}
	return nil
}

func (f *fakeFocusSessionRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	n := int64(len(f.sessions))
	f.sessions = nil
	return n, nil
}

func newFocusService(repo *fakeFocusSessionRepo) *FocusService {
	return &FocusService{Sessions: repo, Stats: &StatsService{Stats: &fakeStatsRepo{}}}
}

func TestStatusForStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := statusForStart(now, now); got != model.SessionActive {
		t.Errorf("start == now: status = %q, want active", got)
	}
	if got := statusForStart(now.Add(-time.Minute), now); got != model.SessionActive {
		t.Errorf("start in the past: status = %q, want active", got)
	}
	if got := statusForStart(now.Add(time.Minute), now); got != model.SessionScheduled {
		t.Errorf("start in the future: status = %q, want scheduled", got)
	}
}

func TestCreateSessionImmediateStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	withFixedClock(t, now)

	repo := &fakeFocusSessionRepo{}
	svc := newFocusService(repo)

	session, err := svc.Create(context.Background(), "u1", dto.CreateFocusSessionRequest{
		Title:           "Deep work",
		DurationMinutes: 25,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if session.Status != model.SessionActive {
		t.Errorf("Status = %q, want active", session.Status)
	}
	if !session.StartTime.Equal(now) {
		t.Errorf("StartTime = %v, want %v", session.StartTime, now)
	}
	if !session.EndTime.Equal(now.Add(25 * time.Minute)) {
		t.Errorf("EndTime = %v, want start + 25m", session.EndTime)
	}
}

func TestCreateSessionScheduledInFuture(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	withFixedClock(t, now)

	repo := &fakeFocusSessionRepo{}
	svc := newFocusService(repo)

	start := now.Add(2 * time.Hour)
	session, err := svc.Create(context.Background(), "u1", dto.CreateFocusSessionRequest{
		Title:           "Later",
		DurationMinutes: 50,
		ScheduledTime:   start.Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if session.Status != model.SessionScheduled {
		t.Errorf("Status = %q, want scheduled", session.Status)
	}
	if !session.EndTime.Equal(start.Add(50 * time.Minute)) {
		t.Errorf("EndTime = %v, want scheduled start + 50m", session.EndTime)
	}
}

func TestCreateSessionRejectsBadScheduledTime(t *testing.T) {
	svc := newFocusService(&fakeFocusSessionRepo{})

	_, err := svc.Create(context.Background(), "u1", dto.CreateFocusSessionRequest{
		Title:           "Bad",
		DurationMinutes: 25,
		ScheduledTime:   "tomorrow at noon",
	})
	if !errors.Is(err, ErrBadScheduledTime) {
		t.Errorf("expected ErrBadScheduledTime, got %v", err)
	}
}

func TestCreateSessionRejectsSecondActive(t *testing.T) {
	repo := &fakeFocusSessionRepo{
		active: &model.FocusSession{SessionID: "running", UserID: "u1", Status: model.SessionActive},
	}
	svc := newFocusService(repo)

	_, err := svc.Create(context.Background(), "u1", dto.CreateFocusSessionRequest{
		Title:           "Second",
		DurationMinutes: 25,
	})
	if !errors.Is(err, ErrActiveSessionExists) {
		t.Errorf("expected ErrActiveSessionExists, got %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Errorf("no session should have been written, got %d", len(repo.sessions))
	}
}

func TestUpdateStatusCompletesActiveSession(t *testing.T) {
	statsRepo := &fakeStatsRepo{}
	repo := &fakeFocusSessionRepo{sessions: []*model.FocusSession{
		{SessionID: "s1", UserID: "u1", Status: model.SessionActive, DurationMinutes: 25},
	}}
	svc := &FocusService{Sessions: repo, Stats: &StatsService{Stats: statsRepo}}

	session, err := svc.UpdateStatus(context.Background(), "u1", "s1", model.SessionCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if session.Status != model.SessionCompleted {
		t.Errorf("Status = %q, want completed", session.Status)
	}
	if statsRepo.upserts != 1 {
		t.Errorf("completion should feed stats, upserts = %d", statsRepo.upserts)
	}
	if statsRepo.stats.CompletedSessions != 1 || statsRepo.stats.CompletedMinutes != 25 {
		t.Errorf("unexpected stats row: %+v", statsRepo.stats)
	}
}

func TestUpdateStatusRejectsFinishedSession(t *testing.T) {
	repo := &fakeFocusSessionRepo{sessions: []*model.FocusSession{
		{SessionID: "s1", UserID: "u1", Status: model.SessionCompleted},
	}}
	svc := newFocusService(repo)

	_, err := svc.UpdateStatus(context.Background(), "u1", "s1", model.SessionStopped)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatusUnknownSession(t *testing.T) {
	svc := newFocusService(&fakeFocusSessionRepo{})

	_, err := svc.UpdateStatus(context.Background(), "u1", "missing", model.SessionStopped)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

package usecase

import (
	"context"
	"log"
	"math"
	"time"

	"main/model"
)

type StatsRepository interface {
	Find(ctx context.Context, userID string) (*model.UserStats, error)
	Insert(ctx context.Context, stats *model.UserStats) error
	Upsert(ctx context.Context, stats *model.UserStats) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type StatsService struct {
	Stats StatsRepository
}

// Get returns the user's stats, falling back to an empty row when the
// registration-time seed never happened.
func (s *StatsService) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	stats, err := s.Stats.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = model.NewUserStats(userID)
	}
	return stats, nil
}

// RecordSessionCreated bumps the created counters. Best-effort: the caller
// has already written the session and must not fail because of this.
func (s *StatsService) RecordSessionCreated(ctx context.Context, userID string, minutes int) {
	stats, err := s.Get(ctx, userID)
	if err != nil {
		log.Printf("stats update skipped for user %s: %v", userID, err)
		return
	}

	stats.TotalSessions++
	stats.TotalMinutes += minutes
	recomputeCompletionRate(stats)

	if err := s.Stats.Upsert(ctx, stats); err != nil {
		log.Printf("failed to update stats for user %s: %v", userID, err)
	}
}

// RecordSessionCompleted bumps the completion counters and advances the
// streak. Best-effort, same contract as RecordSessionCreated.
func (s *StatsService) RecordSessionCompleted(ctx context.Context, userID string, minutes int, when time.Time) {
	stats, err := s.Get(ctx, userID)
	if err != nil {
		log.Printf("stats update skipped for user %s: %v", userID, err)
		return
	}

	applyCompletion(stats, minutes, when)

	if err := s.Stats.Upsert(ctx, stats); err != nil {
		log.Printf("failed to update stats for user %s: %v", userID, err)
	}
}

func applyCompletion(stats *model.UserStats, minutes int, when time.Time) {
	stats.CompletedSessions++
	stats.CompletedMinutes += minutes

	day := when.Format("2006-01-02")
	yesterday := when.AddDate(0, 0, -1).Format("2006-01-02")
	switch stats.LastSessionDate {
	case day:
		// same day, streak unchanged
	case yesterday:
		stats.CurrentStreakDays++
	default:
		stats.CurrentStreakDays = 1
	}
	stats.LastSessionDate = day

	if stats.CurrentStreakDays > stats.LongestStreakDays {
		stats.LongestStreakDays = stats.CurrentStreakDays
	}

	recomputeCompletionRate(stats)
}

func recomputeCompletionRate(stats *model.UserStats) {
	if stats.TotalSessions == 0 {
		stats.CompletionRate = 0
		return
	}
	rate := float64(stats.CompletedSessions) / float64(stats.TotalSessions) * 100
	stats.CompletionRate = math.Round(rate*10) / 10
}

package quest

import (
	"context"

	"log/slog"
)

const defaultQueueSize = 256

// Dispatcher runs the best-effort side of a quest completion: streak
// recompute and badge evaluation. Points are already credited inside the
// completion transaction; everything here may fail without reversing it, so
// failures are logged and swallowed.
type Dispatcher struct {
	store   Store
	streaks *StreakCalculator
	badges  *BadgeEvaluator
	tasks   chan int64
}

func NewDispatcher(store Store, streaks *StreakCalculator, badges *BadgeEvaluator) *Dispatcher {
	return &Dispatcher{
		store:   store,
		streaks: streaks,
		badges:  badges,
		tasks:   make(chan int64, defaultQueueSize),
	}
}

// QuestCompleted enqueues a completion event for follow-up processing.
// Non-blocking: when the queue is full the event is dropped and logged; the
// next completion recomputes the same derived state anyway.
func (d *Dispatcher) QuestCompleted(userID int64) {
	select {
	case d.tasks <- userID:
	default:
		slog.Warn("Reward queue full, dropping follow-up",
			slog.Int64("user_id", userID))
	}
}

// Run processes completion events until ctx is cancelled. Meant to be run
// from an errgroup next to the HTTP server.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case userID := <-d.tasks:
			d.Process(ctx, userID)
		}
	}
}

// Process runs the streak and badge follow-up for one user synchronously.
// Exposed so tests and the migrate tooling can skip the queue.
func (d *Dispatcher) Process(ctx context.Context, userID int64) {
	streakDays, err := d.streaks.Recalculate(ctx, userID)
	if err != nil {
		slog.Error("Streak recalculation failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		streakDays = 0
	}

	stats, err := d.snapshot(ctx, userID, streakDays)
	if err != nil {
		slog.Error("Stats snapshot failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return
	}

	if err := d.badges.Evaluate(ctx, userID, stats); err != nil {
		slog.Error("Badge evaluation failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
	}
}

func (d *Dispatcher) snapshot(ctx context.Context, userID int64, streakDays int) (StatsSnapshot, error) {
	points, err := d.store.GetUserPoints(ctx, userID)
	if err != nil {
		return StatsSnapshot{}, err
	}
	completed, err := d.store.CountCompleted(ctx, userID)
	if err != nil {
		return StatsSnapshot{}, err
	}
	return StatsSnapshot{
		Points:          points,
		QuestsCompleted: completed,
		StreakDays:      streakDays,
	}, nil
}

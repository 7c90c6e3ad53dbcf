package quest

import (
	"context"

	"log/slog"
)

// Pseudo-counter names synthesized from the user's aggregate stats. Badge
// requirements may mix these freely with real user counters.
const (
	CounterPoints          = "points"
	CounterQuestsCompleted = "questsCompleted"
	CounterStreakDays      = "streakDays"
)

// StatsSnapshot is the aggregate view of a user at evaluation time.
type StatsSnapshot struct {
	Points          int64
	QuestsCompleted int
	StreakDays      int
}

// BadgeEvaluator grants any badge whose requirement is fully met. Grants are
// idempotent and per-badge failures are isolated, so one malformed
// definition never blocks the rest.
type BadgeEvaluator struct {
	store Store
}

func NewBadgeEvaluator(store Store) *BadgeEvaluator {
	return &BadgeEvaluator{store: store}
}

// Evaluate scans every badge definition against the union of the user's
// stored counters and the pseudo-counters from stats. A missing counter
// counts as zero; all pairs must be satisfied (AND semantics).
func (e *BadgeEvaluator) Evaluate(ctx context.Context, userID int64, stats StatsSnapshot) error {
	badges, err := e.store.ListBadges(ctx)
	if err != nil {
		return err
	}

	counters, err := e.store.GetCounters(ctx, userID)
	if err != nil {
		return err
	}
	if counters == nil {
		counters = map[string]int64{}
	}
	counters[CounterPoints] = stats.Points
	counters[CounterQuestsCompleted] = int64(stats.QuestsCompleted)
	counters[CounterStreakDays] = int64(stats.StreakDays)

	for _, badge := range badges {
		if err := e.evaluateOne(ctx, userID, badge.ID, badge.Requirement, counters); err != nil {
			slog.Error("Badge evaluation failed",
				slog.Int64("user_id", userID),
				slog.Int64("badge_id", badge.ID),
				slog.Any("error", err))
		}
	}
	return nil
}

func (e *BadgeEvaluator) evaluateOne(ctx context.Context, userID, badgeID int64, requirement map[string]int64, counters map[string]int64) error {
	for counterName, required := range requirement {
		if counters[counterName] < required {
			return nil
		}
	}

	granted, err := e.store.HasBadge(ctx, userID, badgeID)
	if err != nil {
		return err
	}
	if granted {
		return nil
	}

	if err := e.store.GrantBadge(ctx, userID, badgeID); err != nil {
		return err
	}
	slog.Info("Badge awarded",
		slog.Int64("user_id", userID),
		slog.Int64("badge_id", badgeID))
	return nil
}

package quest

import (
	"context"
	"time"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

// StreakCalculator derives the consecutive-day completion count from the
// attempt history instead of incrementing blindly. Recomputation makes it
// idempotent under repeated completions on the same day: two quests finished
// today yield the same streak number both times.
type StreakCalculator struct {
	store Store
	now   func() time.Time
}

func NewStreakCalculator(store Store) *StreakCalculator {
	return &StreakCalculator{store: store, now: time.Now}
}

// WithClock overrides the calculator clock. Tests only.
func (c *StreakCalculator) WithClock(now func() time.Time) *StreakCalculator {
	c.now = now
	return c
}

// Recalculate computes the user's streak and upserts the stored row.
//
//	no completion today            -> 0
//	completion today only          -> 1
//	completion today and yesterday -> stored streak + 1
func (c *StreakCalculator) Recalculate(ctx context.Context, userID int64) (int, error) {
	now := c.now()
	today := DailyPeriode(now)
	yesterday := DailyPeriode(now.AddDate(0, 0, -1))

	completedToday, err := c.store.HasCompletionInPeriode(ctx, userID, today)
	if err != nil {
		return 0, err
	}

	streakCount := 0
	if completedToday {
		streakCount = 1
		completedYesterday, err := c.store.HasCompletionInPeriode(ctx, userID, yesterday)
		if err != nil {
			return 0, err
		}
		if completedYesterday {
			stored, err := c.store.GetStreak(ctx, userID)
			if err != nil {
				return 0, err
			}
			if stored != nil {
				streakCount = stored.StreakCount + 1
			}
		}
	}

	err = c.store.UpsertStreak(ctx, &models.UserStreak{
		UserID:            userID,
		StreakCount:       streakCount,
		LastCompletedDate: today,
	})
	if err != nil {
		return 0, err
	}
	return streakCount, nil
}

package models

import (
	"github.com/uptrace/bun"
)

// UserStreak holds the recomputed consecutive-day completion count for a
// user. One row per user, upserted on every quest completion.
type UserStreak struct {
	bun.BaseModel `bun:"table:user_streaks,alias:us"`

	UserID            int64  `bun:"user_id,pk"`
	StreakCount       int    `bun:"streak_count,notnull,default:0"`
	LastCompletedDate string `bun:"last_completed_date,notnull"` // "YYYY-MM-DD"
}

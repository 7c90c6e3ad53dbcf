package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Badge is awarded when every (counter → minimum) pair in Requirement is
// satisfied by the user's counters, including the synthesized points,
// questsCompleted and streakDays pseudo-counters.
type Badge struct {
	bun.BaseModel `bun:"table:badges,alias:b"`

	ID          int64            `bun:"id,pk,autoincrement"`
	Name        string           `bun:"name,notnull,unique"`
	Description string           `bun:"description"`
	ImageURL    string           `bun:"image_url"`
	Requirement map[string]int64 `bun:"requirement,type:jsonb"`
	CreatedAt   time.Time        `bun:"created_at,notnull"`
}

// UserBadge is a grant record, unique per (user_id, badge_id).
type UserBadge struct {
	bun.BaseModel `bun:"table:user_badges,alias:ub"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	BadgeID   int64     `bun:"badge_id,notnull"`
	AwardedAt time.Time `bun:"awarded_at,notnull"`

	// Relations
	Badge *Badge `bun:"rel:has-one,join:badge_id=id"`
}

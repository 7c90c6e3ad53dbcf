package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Quest struct {
	bun.BaseModel `bun:"table:quests,alias:q"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Name        string     `bun:"name,notnull,unique"`
	Description string     `bun:"description"`
	Category    string     `bun:"category,notnull"` // daily, weekly
	Points      int64      `bun:"points,notnull,default:0"`
	Target      int        `bun:"target,notnull,default:1"`
	Deadline    *time.Time `bun:"deadline"` // nil = never expires
	Active      bool       `bun:"active,notnull,default:true"`
	CreatedAt   time.Time  `bun:"created_at,notnull"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull"`
}

// Quest category constants
const (
	QuestCategoryDaily  = "daily"
	QuestCategoryWeekly = "weekly"
)

// Expired reports whether the quest's deadline has passed. A quest with no
// deadline never expires.
func (q *Quest) Expired(now time.Time) bool {
	return q.Deadline != nil && now.After(*q.Deadline)
}

package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserQuest is a single attempt at a quest within one period bucket.
// At most one row may exist per (user_id, quest_id, periode); the unique
// index enforces it at the storage layer.
type UserQuest struct {
	bun.BaseModel `bun:"table:user_quests,alias:uq"`

	ID         int64      `bun:"id,pk,autoincrement"`
	UserID     int64      `bun:"user_id,notnull"`
	QuestID    int64      `bun:"quest_id,notnull"`
	Periode    string     `bun:"periode,notnull"` // "2024-06-01" or "2024-W23"
	Progress   int        `bun:"progress,notnull,default:0"`
	Completed  bool       `bun:"completed,notnull,default:false"`
	StartedAt  time.Time  `bun:"started_at,notnull"`
	FinishedAt *time.Time `bun:"finished_at"` // set iff completed

	// Relations
	Quest *Quest `bun:"rel:has-one,join:quest_id=id"`
}

package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCounter is a named per-user integer counter, created lazily on first
// use and floor-clamped at zero on decrement. Badge requirements are
// evaluated against these values.
type UserCounter struct {
	bun.BaseModel `bun:"table:user_counters,alias:uc"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	CounterName string    `bun:"counter_name,notnull"`
	Value       int64     `bun:"value,notnull,default:0"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

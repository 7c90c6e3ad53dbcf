package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Username  string    `bun:"username,notnull,unique"`
	Email     string    `bun:"email,notnull,unique"`
	Points    int64     `bun:"points,notnull,default:0"`
	Role      string    `bun:"role,notnull,default:'user'"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// User role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserStats is an aggregate snapshot over a user's quest history. It feeds
// the profile endpoint and the badge evaluator's pseudo-counters.
type UserStats struct {
	TotalQuests     int   `json:"total_quests"`
	CompletedQuests int   `json:"completed_quests"`
	TotalProgress   int64 `json:"total_progress"`
}

package quest

import (
	"context"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// Store is the engine's view of persistence. The bun-backed implementation
// lives in database/repositories; tests use the generated mock.
type Store interface {
	// RunInTx runs fn against a transaction-bound Store. The attempt row is
	// the unit of contention, so every mutating transition runs inside a
	// transaction with the row locked via GetAttemptForUpdate.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error

	// Quest definitions
	GetQuest(ctx context.Context, questID int64) (*models.Quest, error)

	// Attempts
	GetAttempt(ctx context.Context, id int64) (*models.UserQuest, error)
	GetAttemptForUpdate(ctx context.Context, id int64) (*models.UserQuest, error)
	InsertAttempt(ctx context.Context, attempt *models.UserQuest) error
	UpdateAttempt(ctx context.Context, attempt *models.UserQuest) error
	ListAttempts(ctx context.Context, userID int64, periode string) ([]*models.UserQuest, error)

	// User points and aggregates
	CreditPoints(ctx context.Context, userID int64, amount int64) error
	GetUserPoints(ctx context.Context, userID int64) (int64, error)
	CountCompleted(ctx context.Context, userID int64) (int, error)
	HasCompletionInPeriode(ctx context.Context, userID int64, periode string) (bool, error)

	// Streaks
	GetStreak(ctx context.Context, userID int64) (*models.UserStreak, error)
	UpsertStreak(ctx context.Context, streak *models.UserStreak) error

	// Badges and counters
	ListBadges(ctx context.Context) ([]*models.Badge, error)
	HasBadge(ctx context.Context, userID, badgeID int64) (bool, error)
	GrantBadge(ctx context.Context, userID, badgeID int64) error
	GetCounters(ctx context.Context, userID int64) (map[string]int64, error)
}

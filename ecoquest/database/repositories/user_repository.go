package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
)

type UserRepository struct {
	BaseRepository
	db *bun.DB
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{BaseRepository: NewBaseRepository(), db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return &quest.ConflictError{Entity: "user", Detail: user.Username}
		}
		return r.HandleError("create", "user", user.Username, err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "user", id, err)
	}
	return user, nil
}

// GetStats aggregates the user's quest history for the profile endpoint and
// the badge evaluator's pseudo-counters.
func (r *UserRepository) GetStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	stats := new(models.UserStats)
	err := r.db.NewSelect().
		Model((*models.UserQuest)(nil)).
		ColumnExpr("COUNT(*) AS total_quests").
		ColumnExpr("COUNT(*) FILTER (WHERE completed) AS completed_quests").
		ColumnExpr("COALESCE(SUM(progress) FILTER (WHERE completed), 0) AS total_progress").
		Where("user_id = ?", userID).
		Scan(ctx, &stats.TotalQuests, &stats.CompletedQuests, &stats.TotalProgress)
	if err != nil {
		return nil, r.HandleError("stats", "user", userID, err)
	}
	return stats, nil
}

func (r *UserRepository) ListBadges(ctx context.Context, userID int64) ([]*models.UserBadge, error) {
	var grants []*models.UserBadge
	err := r.db.NewSelect().
		Model(&grants).
		Relation("Badge").
		Where("ub.user_id = ?", userID).
		Order("ub.awarded_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_badges", "user", userID, err)
	}
	return grants, nil
}

func (r *UserRepository) GetStreak(ctx context.Context, userID int64) (*models.UserStreak, error) {
	streak := new(models.UserStreak)
	err := r.db.NewSelect().
		Model(streak).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No streak row yet reads as a zero streak.
			return &models.UserStreak{UserID: userID}, nil
		}
		return nil, r.HandleError("get_streak", "user", userID, err)
	}
	return streak, nil
}

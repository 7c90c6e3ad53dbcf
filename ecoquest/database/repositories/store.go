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

// Store is the bun-backed implementation of quest.Store. It works against
// bun.IDB so the same code serves both the root connection and a
// transaction-bound copy handed out by RunInTx.
type Store struct {
	BaseRepository
	root *bun.DB
	db   bun.IDB
}

func NewStore(db *bun.DB) *Store {
	return &Store{BaseRepository: NewBaseRepository(), root: db, db: db}
}

var _ quest.Store = (*Store)(nil)

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx quest.Store) error) error {
	return s.root.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		bound := &Store{BaseRepository: s.BaseRepository, root: s.root, db: tx}
		return fn(ctx, bound)
	})
}

func (s *Store) GetQuest(ctx context.Context, questID int64) (*models.Quest, error) {
	q := new(models.Quest)
	err := s.db.NewSelect().
		Model(q).
		Where("q.id = ?", questID).
		Scan(ctx)
	if err != nil {
		return nil, s.HandleError("get", "quest", questID, err)
	}
	return q, nil
}

func (s *Store) GetAttempt(ctx context.Context, id int64) (*models.UserQuest, error) {
	attempt := new(models.UserQuest)
	err := s.db.NewSelect().
		Model(attempt).
		Relation("Quest").
		Where("uq.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, s.HandleError("get", "user quest", id, err)
	}
	return attempt, nil
}

// GetAttemptForUpdate locks the attempt row for the rest of the enclosing
// transaction, serializing concurrent read-modify-write cycles on progress.
// No relation join here: FOR UPDATE and outer joins do not mix.
func (s *Store) GetAttemptForUpdate(ctx context.Context, id int64) (*models.UserQuest, error) {
	attempt := new(models.UserQuest)
	err := s.db.NewSelect().
		Model(attempt).
		Where("uq.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, s.HandleError("get_for_update", "user quest", id, err)
	}
	return attempt, nil
}

func (s *Store) InsertAttempt(ctx context.Context, attempt *models.UserQuest) error {
	_, err := s.db.NewInsert().Model(attempt).Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return &quest.ConflictError{Entity: "user quest", Detail: "attempt already started for this periode"}
		}
		return s.HandleError("insert", "user quest", attempt.QuestID, err)
	}
	return nil
}

func (s *Store) UpdateAttempt(ctx context.Context, attempt *models.UserQuest) error {
	_, err := s.db.NewUpdate().
		Model(attempt).
		Column("progress", "completed", "finished_at").
		WherePK().
		Exec(ctx)
	return s.HandleError("update", "user quest", attempt.ID, err)
}

func (s *Store) ListAttempts(ctx context.Context, userID int64, periode string) ([]*models.UserQuest, error) {
	var attempts []*models.UserQuest
	q := s.db.NewSelect().
		Model(&attempts).
		Relation("Quest").
		Where("uq.user_id = ?", userID).
		Order("uq.started_at DESC")
	if periode != "" {
		q = q.Where("uq.periode = ?", periode)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, s.HandleError("list", "user quest", userID, err)
	}
	return attempts, nil
}

func (s *Store) CreditPoints(ctx context.Context, userID int64, amount int64) error {
	res, err := s.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("points = points + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return s.HandleError("credit_points", "user", userID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return &quest.NotFoundError{Entity: "user", ID: userID}
	}
	return nil
}

func (s *Store) GetUserPoints(ctx context.Context, userID int64) (int64, error) {
	var points int64
	err := s.db.NewSelect().
		Model((*models.User)(nil)).
		Column("points").
		Where("id = ?", userID).
		Scan(ctx, &points)
	if err != nil {
		return 0, s.HandleError("get_points", "user", userID, err)
	}
	return points, nil
}

func (s *Store) CountCompleted(ctx context.Context, userID int64) (int, error) {
	count, err := s.db.NewSelect().
		Model((*models.UserQuest)(nil)).
		Where("user_id = ?", userID).
		Where("completed = ?", true).
		Count(ctx)
	if err != nil {
		return 0, s.HandleError("count_completed", "user quest", userID, err)
	}
	return count, nil
}

func (s *Store) HasCompletionInPeriode(ctx context.Context, userID int64, periode string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*models.UserQuest)(nil)).
		Where("user_id = ?", userID).
		Where("periode = ?", periode).
		Where("completed = ?", true).
		Exists(ctx)
	if err != nil {
		return false, s.HandleError("has_completion", "user quest", userID, err)
	}
	return exists, nil
}

func (s *Store) GetStreak(ctx context.Context, userID int64) (*models.UserStreak, error) {
	streak := new(models.UserStreak)
	err := s.db.NewSelect().
		Model(streak).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, s.HandleError("get", "user streak", userID, err)
	}
	return streak, nil
}

func (s *Store) UpsertStreak(ctx context.Context, streak *models.UserStreak) error {
	_, err := s.db.NewInsert().
		Model(streak).
		On("CONFLICT (user_id) DO UPDATE").
		Set("streak_count = EXCLUDED.streak_count").
		Set("last_completed_date = EXCLUDED.last_completed_date").
		Exec(ctx)
	return s.HandleError("upsert", "user streak", streak.UserID, err)
}

func (s *Store) ListBadges(ctx context.Context) ([]*models.Badge, error) {
	var badges []*models.Badge
	err := s.db.NewSelect().
		Model(&badges).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, s.HandleError("list", "badge", nil, err)
	}
	return badges, nil
}

func (s *Store) HasBadge(ctx context.Context, userID, badgeID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*models.UserBadge)(nil)).
		Where("user_id = ?", userID).
		Where("badge_id = ?", badgeID).
		Exists(ctx)
	if err != nil {
		return false, s.HandleError("has", "user badge", badgeID, err)
	}
	return exists, nil
}

// GrantBadge inserts the grant record. ON CONFLICT DO NOTHING keeps the
// grant idempotent even when two completions evaluate the same badge
// concurrently.
func (s *Store) GrantBadge(ctx context.Context, userID, badgeID int64) error {
	grant := &models.UserBadge{
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	}
	_, err := s.db.NewInsert().
		Model(grant).
		On("CONFLICT (user_id, badge_id) DO NOTHING").
		Exec(ctx)
	return s.HandleError("grant", "user badge", badgeID, err)
}

func (s *Store) GetCounters(ctx context.Context, userID int64) (map[string]int64, error) {
	var counters []*models.UserCounter
	err := s.db.NewSelect().
		Model(&counters).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, s.HandleError("list", "user counter", userID, err)
	}

	values := make(map[string]int64, len(counters))
	for _, c := range counters {
		values[c.CounterName] = c.Value
	}
	return values, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

type CounterRepository struct {
	BaseRepository
	db *bun.DB
}

func NewCounterRepository(db *bun.DB) *CounterRepository {
	return &CounterRepository{BaseRepository: NewBaseRepository(), db: db}
}

// GetOrCreate returns the counter row, inserting a zero-valued row on first
// use. The unique index on (user_id, counter_name) plus ON CONFLICT keeps
// concurrent first touches from producing duplicates.
func (r *CounterRepository) GetOrCreate(ctx context.Context, userID int64, name string) (*models.UserCounter, error) {
	counter := new(models.UserCounter)
	err := r.db.NewSelect().
		Model(counter).
		Where("user_id = ?", userID).
		Where("counter_name = ?", name).
		Scan(ctx)
	if err == nil {
		return counter, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, r.HandleError("get", "user counter", name, err)
	}

	counter = &models.UserCounter{
		UserID:      userID,
		CounterName: name,
		Value:       0,
		UpdatedAt:   time.Now(),
	}
	_, err = r.db.NewInsert().
		Model(counter).
		On("CONFLICT (user_id, counter_name) DO UPDATE SET updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, r.HandleError("create", "user counter", name, err)
	}
	return counter, nil
}

// Adjust applies delta to a counter, clamping the result at zero, and
// returns the new value. The arithmetic runs in SQL so concurrent
// adjustments serialize on the row.
func (r *CounterRepository) Adjust(ctx context.Context, userID int64, name string, delta int64) (int64, error) {
	counter, err := r.GetOrCreate(ctx, userID, name)
	if err != nil {
		return 0, err
	}

	var newValue int64
	err = r.db.NewUpdate().
		Model((*models.UserCounter)(nil)).
		Set("value = GREATEST(0, value + ?)", delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", counter.ID).
		Returning("value").
		Scan(ctx, &newValue)
	if err != nil {
		return 0, r.HandleError("adjust", "user counter", name, err)
	}
	return newValue, nil
}

// Summary returns the values for the registered counter names, zero for any
// the user has not touched yet.
func (r *CounterRepository) Summary(ctx context.Context, userID int64, names []string) (map[string]int64, error) {
	var counters []*models.UserCounter
	err := r.db.NewSelect().
		Model(&counters).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("summary", "user counter", userID, err)
	}

	values := make(map[string]int64, len(names))
	for _, name := range names {
		values[name] = 0
	}
	for _, c := range counters {
		if _, ok := values[c.CounterName]; ok {
			values[c.CounterName] = c.Value
		}
	}
	return values, nil
}

package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
)

// QuestRepository implements quest.CatalogRepository.
type QuestRepository struct {
	BaseRepository
	db *bun.DB
}

func NewQuestRepository(db *bun.DB) *QuestRepository {
	return &QuestRepository{BaseRepository: NewBaseRepository(), db: db}
}

var _ quest.CatalogRepository = (*QuestRepository)(nil)

func (r *QuestRepository) List(ctx context.Context) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "quest", nil, err)
	}
	return quests, nil
}

func (r *QuestRepository) GetByID(ctx context.Context, id int64) (*models.Quest, error) {
	q := new(models.Quest)
	err := r.db.NewSelect().
		Model(q).
		Where("q.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "quest", id, err)
	}
	return q, nil
}

func (r *QuestRepository) Create(ctx context.Context, q *models.Quest) error {
	_, err := r.db.NewInsert().Model(q).Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return &quest.ConflictError{Entity: "quest", Detail: q.Name}
		}
		return r.HandleError("create", "quest", q.Name, err)
	}
	return nil
}

func (r *QuestRepository) Update(ctx context.Context, q *models.Quest) error {
	res, err := r.db.NewUpdate().
		Model(q).
		Column("name", "description", "category", "points", "target", "deadline", "active", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return &quest.ConflictError{Entity: "quest", Detail: q.Name}
		}
		return r.HandleError("update", "quest", q.ID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return &quest.NotFoundError{Entity: "quest", ID: q.ID}
	}
	return nil
}

func (r *QuestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*models.Quest)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return r.HandleError("delete", "quest", id, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return &quest.NotFoundError{Entity: "quest", ID: id}
	}
	return nil
}

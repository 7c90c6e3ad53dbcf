package quest

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

const catalogCacheSize = 512

// CatalogRepository is the persistence view of the quest catalog. Unlike the
// engine Store it includes the administrative writes.
type CatalogRepository interface {
	List(ctx context.Context) ([]*models.Quest, error)
	GetByID(ctx context.Context, id int64) (*models.Quest, error)
	Create(ctx context.Context, q *models.Quest) error
	Update(ctx context.Context, q *models.Quest) error
	Delete(ctx context.Context, id int64) error
}

// Catalog serves quest definitions. Definitions are immutable outside
// administrative edits, so reads go through an LRU cache invalidated on
// write.
type Catalog struct {
	repo  CatalogRepository
	cache *lru.Cache
}

func NewCatalog(repo CatalogRepository) (*Catalog, error) {
	cache, err := lru.New(catalogCacheSize)
	if err != nil {
		return nil, err
	}
	return &Catalog{repo: repo, cache: cache}, nil
}

func (c *Catalog) GetByID(ctx context.Context, id int64) (*models.Quest, error) {
	if cached, ok := c.cache.Get(id); ok {
		return cached.(*models.Quest), nil
	}

	q, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id, q)
	return q, nil
}

// List returns the catalog, fuzzy-filtered by name when search is set.
func (c *Catalog) List(ctx context.Context, search string) ([]*models.Quest, error) {
	quests, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return quests, nil
	}

	matches := fuzzy.FindFrom(search, questSource(quests))
	filtered := make([]*models.Quest, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, quests[m.Index])
	}
	return filtered, nil
}

func (c *Catalog) Create(ctx context.Context, q *models.Quest) error {
	if err := validateQuest(q); err != nil {
		return err
	}
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	return c.repo.Create(ctx, q)
}

func (c *Catalog) Update(ctx context.Context, q *models.Quest) error {
	if err := validateQuest(q); err != nil {
		return err
	}
	q.UpdatedAt = time.Now()
	if err := c.repo.Update(ctx, q); err != nil {
		return err
	}
	c.cache.Remove(q.ID)
	return nil
}

func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.Remove(id)
	return nil
}

func validateQuest(q *models.Quest) error {
	if q.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if q.Category != models.QuestCategoryDaily && q.Category != models.QuestCategoryWeekly {
		return &ValidationError{Field: "category", Reason: "must be daily or weekly"}
	}
	if q.Points < 0 {
		return &ValidationError{Field: "points", Reason: "must be >= 0"}
	}
	if q.Target < 1 {
		return &ValidationError{Field: "target", Reason: "must be >= 1"}
	}
	return nil
}

type questSource []*models.Quest

func (s questSource) String(i int) string { return s[i].Name }
func (s questSource) Len() int            { return len(s) }

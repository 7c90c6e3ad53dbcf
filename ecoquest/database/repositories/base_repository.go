package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ecoquest/ecoquest/ecoquest/quest"
)

const defaultQueryTimeout = 30 * time.Second

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// RepositoryError wraps an unexpected storage failure with its operation
// and entity for logging.
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

// BaseRepository provides the shared timeout and error-mapping behavior.
type BaseRepository struct {
	defaultTimeout time.Duration
}

func NewBaseRepository() BaseRepository {
	return BaseRepository{defaultTimeout: defaultQueryTimeout}
}

// WithTimeout creates a context with the default query timeout.
func (br BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// HandleError maps storage errors onto the domain taxonomy: sql.ErrNoRows
// becomes NotFoundError, SQLSTATE 23505 becomes ConflictError, anything else
// is wrapped as a RepositoryError.
func (br BaseRepository) HandleError(operation, entity string, id interface{}, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &quest.NotFoundError{Entity: entity, ID: id}
	}
	if IsUniqueViolation(err) {
		return &quest.ConflictError{Entity: entity, Detail: fmt.Sprintf("%v", id)}
	}
	return &RepositoryError{Operation: operation, Entity: entity, Err: err}
}

// IsUniqueViolation reports whether err is a unique constraint violation
// from either the bun/pgdriver or the pgx path.
func IsUniqueViolation(err error) bool {
	var pgdrvErr pgdriver.Error
	if errors.As(err, &pgdrvErr) {
		return pgdrvErr.Field('C') == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

package quiz

import (
	"context"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// Store is the quiz service's view of persistence.
type Store interface {
	// RunInTx runs fn against a transaction-bound Store; the whole submit
	// write set commits or rolls back together.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error

	RandomQuestions(ctx context.Context, n int) ([]*models.QuizQuestion, error)
	// GetSession returns nil, nil when the user has no session for date.
	GetSession(ctx context.Context, userID int64, date string) (*models.QuizSession, error)
	InsertSession(ctx context.Context, session *models.QuizSession) error
	InsertAnswer(ctx context.Context, answer *models.QuizAnswer) error
	// CorrectChoiceID returns 0, nil when the question has no choice marked
	// correct.
	CorrectChoiceID(ctx context.Context, questionID int64) (int64, error)
	UpdateSessionScore(ctx context.Context, sessionID int64, score int) error
	CreditPoints(ctx context.Context, userID int64, amount int64) error
}

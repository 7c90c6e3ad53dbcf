package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quiz"
)

// QuizRepository is the bun-backed implementation of quiz.Store.
type QuizRepository struct {
	BaseRepository
	root *bun.DB
	db   bun.IDB
}

func NewQuizRepository(db *bun.DB) *QuizRepository {
	return &QuizRepository{BaseRepository: NewBaseRepository(), root: db, db: db}
}

var _ quiz.Store = (*QuizRepository)(nil)

func (r *QuizRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx quiz.Store) error) error {
	return r.root.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		bound := &QuizRepository{BaseRepository: r.BaseRepository, root: r.root, db: tx}
		return fn(ctx, bound)
	})
}

func (r *QuizRepository) RandomQuestions(ctx context.Context, n int) ([]*models.QuizQuestion, error) {
	var questions []*models.QuizQuestion
	err := r.db.NewSelect().
		Model(&questions).
		Relation("Choices", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("id ASC")
		}).
		OrderExpr("RANDOM()").
		Limit(n).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("random", "quiz question", n, err)
	}
	return questions, nil
}

func (r *QuizRepository) GetSession(ctx context.Context, userID int64, date string) (*models.QuizSession, error) {
	session := new(models.QuizSession)
	err := r.db.NewSelect().
		Model(session).
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.HandleError("get", "quiz session", userID, err)
	}
	return session, nil
}

func (r *QuizRepository) InsertSession(ctx context.Context, session *models.QuizSession) error {
	_, err := r.db.NewInsert().Model(session).Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return &quest.ConflictError{Entity: "quiz session", Detail: "already submitted today"}
		}
		return r.HandleError("insert", "quiz session", session.UserID, err)
	}
	return nil
}

func (r *QuizRepository) InsertAnswer(ctx context.Context, answer *models.QuizAnswer) error {
	_, err := r.db.NewInsert().Model(answer).Exec(ctx)
	return r.HandleError("insert", "quiz answer", answer.QuestionID, err)
}

func (r *QuizRepository) CorrectChoiceID(ctx context.Context, questionID int64) (int64, error) {
	var id int64
	err := r.db.NewSelect().
		Model((*models.QuizChoice)(nil)).
		Column("id").
		Where("question_id = ?", questionID).
		Where("is_correct = ?", true).
		Limit(1).
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, r.HandleError("correct_choice", "quiz choice", questionID, err)
	}
	return id, nil
}

func (r *QuizRepository) UpdateSessionScore(ctx context.Context, sessionID int64, score int) error {
	_, err := r.db.NewUpdate().
		Model((*models.QuizSession)(nil)).
		Set("score = ?", score).
		Where("id = ?", sessionID).
		Exec(ctx)
	return r.HandleError("update_score", "quiz session", sessionID, err)
}

func (r *QuizRepository) CreditPoints(ctx context.Context, userID int64, amount int64) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("points = points + ?", amount).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("credit_points", "user", userID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return &quest.NotFoundError{Entity: "user", ID: userID}
	}
	return nil
}

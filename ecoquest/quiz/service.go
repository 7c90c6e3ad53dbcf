package quiz

import (
	"context"
	"math"
	"time"

	"log/slog"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
)

const (
	// QuestionsPerQuiz is how many questions a daily quiz serves.
	QuestionsPerQuiz = 5
	// DefaultPointsMultiplier converts a quiz score into points.
	DefaultPointsMultiplier = 2
)

// Answer is one submitted answer.
type Answer struct {
	QuestionID       int64 `json:"question_id"`
	SelectedChoiceID int64 `json:"selected_choice_id"`
}

// Result is the outcome of a scored submission.
type Result struct {
	Score          int   `json:"score"`
	TotalQuestions int   `json:"total_questions"`
	PointsEarned   int64 `json:"points_earned"`
	Percentage     int   `json:"percentage"`
}

// Question is the answer-key-free view served to clients.
type Question struct {
	ID           int64    `json:"id"`
	QuestionText string   `json:"question_text"`
	Choices      []Choice `json:"choices"`
}

type Choice struct {
	ID         int64  `json:"choice_id"`
	ChoiceText string `json:"choice_text"`
}

// Service runs the daily quiz: one session per user per calendar day,
// scored inside a single transaction.
type Service struct {
	store      Store
	multiplier int64
	now        func() time.Time
}

func NewService(store Store, multiplier int64) *Service {
	if multiplier <= 0 {
		multiplier = DefaultPointsMultiplier
	}
	return &Service{store: store, multiplier: multiplier, now: time.Now}
}

// WithClock overrides the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Daily returns today's question set with the answer key stripped.
func (s *Service) Daily(ctx context.Context) ([]Question, error) {
	stored, err := s.store.RandomQuestions(ctx, QuestionsPerQuiz)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, &quest.NotFoundError{Entity: "quiz question", ID: "daily"}
	}

	questions := make([]Question, 0, len(stored))
	for _, q := range stored {
		choices := make([]Choice, 0, len(q.Choices))
		for _, c := range q.Choices {
			choices = append(choices, Choice{ID: c.ID, ChoiceText: c.ChoiceText})
		}
		questions = append(questions, Question{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Choices:      choices,
		})
	}
	return questions, nil
}

// Submit scores a day's answers all-or-nothing: session insert, answer
// inserts, score update and points credit commit together or not at all.
// The unique (user_id, date) index is the source of truth for duplicates;
// the pre-check only short-circuits the common case.
func (s *Service) Submit(ctx context.Context, userID int64, answers []Answer) (*Result, error) {
	if len(answers) < 1 || len(answers) > QuestionsPerQuiz {
		return nil, &quest.ValidationError{Field: "answers", Reason: "must contain 1 to 5 answers"}
	}
	for _, ans := range answers {
		if ans.QuestionID <= 0 {
			return nil, &quest.ValidationError{Field: "question_id", Reason: "must be a positive integer"}
		}
		if ans.SelectedChoiceID <= 0 {
			return nil, &quest.ValidationError{Field: "selected_choice_id", Reason: "must be a positive integer"}
		}
	}

	today := quest.DailyPeriode(s.now())

	existing, err := s.store.GetSession(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &quest.ConflictError{Entity: "quiz session", Detail: "already submitted today"}
	}

	var result *Result
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		session := &models.QuizSession{
			UserID:    userID,
			Date:      today,
			Score:     0,
			Completed: true,
			CreatedAt: s.now(),
		}
		if err := tx.InsertSession(ctx, session); err != nil {
			return err
		}

		score := 0
		for _, ans := range answers {
			if err := tx.InsertAnswer(ctx, &models.QuizAnswer{
				SessionID:        session.ID,
				QuestionID:       ans.QuestionID,
				SelectedChoiceID: ans.SelectedChoiceID,
			}); err != nil {
				return err
			}

			correctID, err := tx.CorrectChoiceID(ctx, ans.QuestionID)
			if err != nil {
				return err
			}
			if correctID != 0 && correctID == ans.SelectedChoiceID {
				score++
			}
		}

		if err := tx.UpdateSessionScore(ctx, session.ID, score); err != nil {
			return err
		}

		pointsEarned := int64(score) * s.multiplier
		if err := tx.CreditPoints(ctx, userID, pointsEarned); err != nil {
			return err
		}

		result = &Result{
			Score:          score,
			TotalQuestions: len(answers),
			PointsEarned:   pointsEarned,
			Percentage:     int(math.Round(float64(score) / float64(len(answers)) * 100)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Daily quiz submitted",
		slog.Int64("user_id", userID),
		slog.Int("score", result.Score),
		slog.Int64("points_earned", result.PointsEarned))
	return result, nil
}

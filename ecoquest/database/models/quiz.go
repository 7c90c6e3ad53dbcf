package models

import (
	"time"

	"github.com/uptrace/bun"
)

type QuizQuestion struct {
	bun.BaseModel `bun:"table:quiz_questions,alias:qq"`

	ID           int64  `bun:"id,pk,autoincrement"`
	QuestionText string `bun:"question_text,notnull"`

	// Relations
	Choices []*QuizChoice `bun:"rel:has-many,join:id=question_id"`
}

type QuizChoice struct {
	bun.BaseModel `bun:"table:quiz_choices,alias:qc"`

	ID         int64  `bun:"id,pk,autoincrement"`
	QuestionID int64  `bun:"question_id,notnull"`
	ChoiceText string `bun:"choice_text,notnull"`
	IsCorrect  bool   `bun:"is_correct,notnull,default:false"`
}

// QuizSession records one user's quiz run for one calendar day, unique per
// (user_id, date).
type QuizSession struct {
	bun.BaseModel `bun:"table:quiz_sessions,alias:qs"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	Date      string    `bun:"date,notnull"` // "YYYY-MM-DD"
	Score     int       `bun:"score,notnull,default:0"`
	Completed bool      `bun:"completed,notnull,default:false"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type QuizAnswer struct {
	bun.BaseModel `bun:"table:quiz_answers,alias:qa"`

	ID               int64 `bun:"id,pk,autoincrement"`
	SessionID        int64 `bun:"session_id,notnull"`
	QuestionID       int64 `bun:"question_id,notnull"`
	SelectedChoiceID int64 `bun:"selected_choice_id,notnull"`
}

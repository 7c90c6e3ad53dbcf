package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quiz"
	"github.com/ecoquest/ecoquest/ecoquest/quiz/mock"
)

var testNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func passthroughTx(store *mock.MockStore) {
	store.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, quiz.Store) error) error {
			return fn(ctx, store)
		}).
		AnyTimes()
}

func TestService_Daily(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().RandomQuestions(gomock.Any(), quiz.QuestionsPerQuiz).Return([]*models.QuizQuestion{
		{
			ID:           1,
			QuestionText: "Which bin does glass go into?",
			Choices: []*models.QuizChoice{
				{ID: 10, QuestionID: 1, ChoiceText: "Green", IsCorrect: true},
				{ID: 11, QuestionID: 1, ChoiceText: "Yellow"},
			},
		},
	}, nil)

	s := quiz.NewService(store, 2)

	questions, err := s.Daily(context.Background())
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(questions) != 1 || len(questions[0].Choices) != 2 {
		t.Fatalf("Daily() = %+v, want one question with two choices", questions)
	}
	// The served view must not leak the answer key.
	if questions[0].Choices[0].ChoiceText != "Green" || questions[0].Choices[1].ChoiceText != "Yellow" {
		t.Errorf("Daily() choices = %+v", questions[0].Choices)
	}
}

func TestService_DailyEmptyPool(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().RandomQuestions(gomock.Any(), quiz.QuestionsPerQuiz).Return(nil, nil)

	s := quiz.NewService(store, 2)

	_, err := s.Daily(context.Background())
	var notFound *quest.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Daily() error = %v, want NotFoundError", err)
	}
}

func TestService_Submit(t *testing.T) {
	answers := []quiz.Answer{
		{QuestionID: 1, SelectedChoiceID: 10},
		{QuestionID: 2, SelectedChoiceID: 21},
		{QuestionID: 3, SelectedChoiceID: 30},
	}

	store := mock.NewMockStore(gomock.NewController(t))
	passthroughTx(store)

	store.EXPECT().GetSession(gomock.Any(), int64(1), "2024-06-05").Return(nil, nil)
	store.EXPECT().InsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, session *models.QuizSession) error {
			session.ID = 77
			return nil
		})

	// Two of three answers are correct.
	store.EXPECT().InsertAnswer(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	store.EXPECT().CorrectChoiceID(gomock.Any(), int64(1)).Return(int64(10), nil)
	store.EXPECT().CorrectChoiceID(gomock.Any(), int64(2)).Return(int64(20), nil)
	store.EXPECT().CorrectChoiceID(gomock.Any(), int64(3)).Return(int64(30), nil)

	store.EXPECT().UpdateSessionScore(gomock.Any(), int64(77), 2).Return(nil)
	store.EXPECT().CreditPoints(gomock.Any(), int64(1), int64(4)).Return(nil)

	s := quiz.NewService(store, 2).WithClock(func() time.Time { return testNow })

	result, err := s.Submit(context.Background(), 1, answers)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Score != 2 || result.PointsEarned != 4 || result.TotalQuestions != 3 {
		t.Errorf("Submit() = %+v, want score 2, 4 points over 3 questions", result)
	}
	if result.Percentage != 67 {
		t.Errorf("Submit() percentage = %d, want 67", result.Percentage)
	}
}

func TestService_SubmitUnknownUser(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	passthroughTx(store)

	store.EXPECT().GetSession(gomock.Any(), int64(9), "2024-06-05").Return(nil, nil)
	store.EXPECT().InsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, session *models.QuizSession) error {
			session.ID = 78
			return nil
		})
	store.EXPECT().InsertAnswer(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CorrectChoiceID(gomock.Any(), int64(1)).Return(int64(10), nil)
	store.EXPECT().UpdateSessionScore(gomock.Any(), int64(78), 1).Return(nil)

	// Crediting a user row that does not exist must fail the transaction
	// instead of silently updating nothing.
	store.EXPECT().CreditPoints(gomock.Any(), int64(9), int64(2)).
		Return(&quest.NotFoundError{Entity: "user", ID: int64(9)})

	s := quiz.NewService(store, 2).WithClock(func() time.Time { return testNow })

	_, err := s.Submit(context.Background(), 9, []quiz.Answer{{QuestionID: 1, SelectedChoiceID: 10}})
	var notFound *quest.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Submit() error = %v, want NotFoundError", err)
	}
}

func TestService_SubmitTwiceSameDay(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().GetSession(gomock.Any(), int64(1), "2024-06-05").
		Return(&models.QuizSession{ID: 77, UserID: 1, Date: "2024-06-05"}, nil)

	s := quiz.NewService(store, 2).WithClock(func() time.Time { return testNow })

	_, err := s.Submit(context.Background(), 1, []quiz.Answer{{QuestionID: 1, SelectedChoiceID: 10}})
	var conflict *quest.ConflictError
	if !errors.As(err, &conflict) {
		t.Errorf("Submit() error = %v, want ConflictError", err)
	}
}

func TestService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		answers []quiz.Answer
	}{
		{name: "no answers", answers: nil},
		{name: "too many answers", answers: make([]quiz.Answer, quiz.QuestionsPerQuiz+1)},
		{name: "bad question id", answers: []quiz.Answer{{QuestionID: 0, SelectedChoiceID: 1}}},
		{name: "bad choice id", answers: []quiz.Answer{{QuestionID: 1, SelectedChoiceID: -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			s := quiz.NewService(store, 2)

			_, err := s.Submit(context.Background(), 1, tt.answers)
			var invalid *quest.ValidationError
			if !errors.As(err, &invalid) {
				t.Errorf("Submit() error = %v, want ValidationError", err)
			}
		})
	}
}

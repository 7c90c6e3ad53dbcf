package quest_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quest/mock"
)

var testNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	completions []int64
}

func (n *recordingNotifier) QuestCompleted(userID int64) {
	n.completions = append(n.completions, userID)
}

// passthroughTx makes RunInTx execute its closure against the mock itself.
func passthroughTx(store *mock.MockStore) {
	store.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, quest.Store) error) error {
			return fn(ctx, store)
		}).
		AnyTimes()
}

func dailyQuest() *models.Quest {
	return &models.Quest{
		ID:       7,
		Name:     "Recycle Rookie",
		Category: models.QuestCategoryDaily,
		Points:   10,
		Target:   5,
		Active:   true,
	}
}

func activeAttempt(progress int) *models.UserQuest {
	return &models.UserQuest{
		ID:        42,
		UserID:    1,
		QuestID:   7,
		Periode:   "2024-06-05",
		Progress:  progress,
		Completed: false,
		StartedAt: testNow.Add(-time.Hour),
	}
}

func TestService_Start(t *testing.T) {
	deadline := testNow.Add(-time.Hour)

	tests := []struct {
		name    string
		questID int64
		periode string
		setup   func(store *mock.MockStore)
		wantErr error
	}{
		{
			name:    "success",
			questID: 7,
			periode: "2024-06-05",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().InsertAttempt(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "invalid quest id",
			questID: 0,
			periode: "2024-06-05",
			setup:   func(store *mock.MockStore) {},
			wantErr: &quest.ValidationError{},
		},
		{
			name:    "empty periode",
			questID: 7,
			periode: "",
			setup:   func(store *mock.MockStore) {},
			wantErr: &quest.ValidationError{},
		},
		{
			name:    "unknown quest",
			questID: 99,
			periode: "2024-06-05",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetQuest(gomock.Any(), int64(99)).
					Return(nil, &quest.NotFoundError{Entity: "quest", ID: int64(99)})
			},
			wantErr: &quest.NotFoundError{},
		},
		{
			name:    "past deadline",
			questID: 7,
			periode: "2024-06-05",
			setup: func(store *mock.MockStore) {
				q := dailyQuest()
				q.Deadline = &deadline
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(q, nil)
			},
			wantErr: &quest.ExpiredError{},
		},
		{
			name:    "duplicate attempt",
			questID: 7,
			periode: "2024-06-05",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().InsertAttempt(gomock.Any(), gomock.Any()).
					Return(&quest.ConflictError{Entity: "user quest", Detail: "duplicate"})
			},
			wantErr: &quest.ConflictError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			tt.setup(store)

			s := quest.NewService(store, nil).WithClock(func() time.Time { return testNow })

			attempt, err := s.Start(context.Background(), 1, tt.questID, tt.periode)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Start() error = nil, want %T", tt.wantErr)
				}
				if !errorsAsType(err, tt.wantErr) {
					t.Errorf("Start() error = %v, want %T", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			if attempt.Progress != 0 || attempt.Completed {
				t.Errorf("Start() attempt = %+v, want zero-progress active attempt", attempt)
			}
		})
	}
}

func TestService_Progress(t *testing.T) {
	tests := []struct {
		name          string
		increment     int
		setup         func(store *mock.MockStore)
		want          *quest.ProgressResult
		wantErr       error
		wantCompleted bool
	}{
		{
			name:      "partial progress",
			increment: 3,
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(0), nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().UpdateAttempt(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &quest.ProgressResult{AttemptID: 42, Progress: 3, Target: 5, Completed: false, PointsEarned: 0},
		},
		{
			name:      "reaching target completes and credits",
			increment: 3,
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(3), nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().UpdateAttempt(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().CreditPoints(gomock.Any(), int64(1), int64(10)).Return(nil)
			},
			want:          &quest.ProgressResult{AttemptID: 42, Progress: 5, Target: 5, Completed: true, PointsEarned: 10},
			wantCompleted: true,
		},
		{
			name:      "overshoot caps at target",
			increment: 100,
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(4), nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().UpdateAttempt(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().CreditPoints(gomock.Any(), int64(1), int64(10)).Return(nil)
			},
			want:          &quest.ProgressResult{AttemptID: 42, Progress: 5, Target: 5, Completed: true, PointsEarned: 10},
			wantCompleted: true,
		},
		{
			name:      "huge increment completes without wrapping",
			increment: math.MaxInt,
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(3), nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
				store.EXPECT().UpdateAttempt(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().CreditPoints(gomock.Any(), int64(1), int64(10)).Return(nil)
			},
			want:          &quest.ProgressResult{AttemptID: 42, Progress: 5, Target: 5, Completed: true, PointsEarned: 10},
			wantCompleted: true,
		},
		{
			name:      "non-positive increment",
			increment: 0,
			setup:     func(store *mock.MockStore) {},
			wantErr:   &quest.ValidationError{},
		},
		{
			name:      "foreign attempt",
			increment: 1,
			setup: func(store *mock.MockStore) {
				attempt := activeAttempt(0)
				attempt.UserID = 2
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(attempt, nil)
			},
			wantErr: &quest.ForbiddenError{},
		},
		{
			name:      "completed attempt rejects transitions",
			increment: 1,
			setup: func(store *mock.MockStore) {
				attempt := activeAttempt(5)
				attempt.Completed = true
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(attempt, nil)
			},
			wantErr: &quest.InvalidStateError{},
		},
		{
			name:      "stale periode",
			increment: 1,
			setup: func(store *mock.MockStore) {
				attempt := activeAttempt(0)
				attempt.Periode = "2024-06-04"
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(attempt, nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
			},
			wantErr: &quest.PeriodeMismatchError{},
		},
		{
			name:      "expired quest",
			increment: 1,
			setup: func(store *mock.MockStore) {
				deadline := testNow.Add(-time.Hour)
				q := dailyQuest()
				q.Deadline = &deadline
				store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(0), nil)
				store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(q, nil)
			},
			wantErr: &quest.ExpiredError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			passthroughTx(store)
			tt.setup(store)

			notifier := &recordingNotifier{}
			s := quest.NewService(store, notifier).WithClock(func() time.Time { return testNow })

			got, err := s.Progress(context.Background(), 1, 42, tt.increment)
			if tt.wantErr != nil {
				if err == nil || !errorsAsType(err, tt.wantErr) {
					t.Fatalf("Progress() error = %v, want %T", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Progress() error = %v", err)
			}
			if got.Progress != tt.want.Progress || got.Completed != tt.want.Completed ||
				got.PointsEarned != tt.want.PointsEarned || got.Target != tt.want.Target {
				t.Errorf("Progress() = %+v, want %+v", got, tt.want)
			}
			if tt.wantCompleted {
				if len(notifier.completions) != 1 || notifier.completions[0] != 1 {
					t.Errorf("Progress() completions = %v, want [1]", notifier.completions)
				}
				if got.Finished == nil {
					t.Error("Progress() Finished = nil on completion")
				}
			} else if len(notifier.completions) != 0 {
				t.Errorf("Progress() completions = %v, want none", notifier.completions)
			}
		})
	}
}

func TestService_Complete(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	passthroughTx(store)

	store.EXPECT().GetAttemptForUpdate(gomock.Any(), int64(42)).Return(activeAttempt(2), nil)
	store.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(dailyQuest(), nil)
	store.EXPECT().UpdateAttempt(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CreditPoints(gomock.Any(), int64(1), int64(10)).Return(nil)

	notifier := &recordingNotifier{}
	s := quest.NewService(store, notifier).WithClock(func() time.Time { return testNow })

	got, err := s.Complete(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !got.Completed || got.PointsEarned != 10 {
		t.Errorf("Complete() = %+v, want completed with 10 points", got)
	}
	// Force-complete keeps the recorded progress; no cap applies.
	if got.Progress != 2 {
		t.Errorf("Complete() progress = %d, want 2", got.Progress)
	}
	if len(notifier.completions) != 1 {
		t.Errorf("Complete() completions = %v, want one event", notifier.completions)
	}
}

func TestService_Get(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().GetAttempt(gomock.Any(), int64(42)).Return(activeAttempt(1), nil).Times(2)

	s := quest.NewService(store, nil)

	if _, err := s.Get(context.Background(), 1, 42); err != nil {
		t.Errorf("Get() owner error = %v", err)
	}

	_, err := s.Get(context.Background(), 2, 42)
	var forbidden *quest.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Errorf("Get() foreign caller error = %v, want ForbiddenError", err)
	}
}

// errorsAsType reports whether err matches the concrete type of want.
func errorsAsType(err error, want error) bool {
	switch want.(type) {
	case *quest.ValidationError:
		var e *quest.ValidationError
		return errors.As(err, &e)
	case *quest.NotFoundError:
		var e *quest.NotFoundError
		return errors.As(err, &e)
	case *quest.ForbiddenError:
		var e *quest.ForbiddenError
		return errors.As(err, &e)
	case *quest.ConflictError:
		var e *quest.ConflictError
		return errors.As(err, &e)
	case *quest.ExpiredError:
		var e *quest.ExpiredError
		return errors.As(err, &e)
	case *quest.PeriodeMismatchError:
		var e *quest.PeriodeMismatchError
		return errors.As(err, &e)
	case *quest.InvalidStateError:
		var e *quest.InvalidStateError
		return errors.As(err, &e)
	default:
		return false
	}
}

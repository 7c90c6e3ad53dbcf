package quest_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quest/mock"
)

func TestStreakCalculator_Recalculate(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	today := "2024-06-05"
	yesterday := "2024-06-04"

	tests := []struct {
		name  string
		setup func(store *mock.MockStore)
		want  int
	}{
		{
			name: "no completion today resets to zero",
			setup: func(store *mock.MockStore) {
				store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), today).Return(false, nil)
				store.EXPECT().UpsertStreak(gomock.Any(), &models.UserStreak{
					UserID: 1, StreakCount: 0, LastCompletedDate: today,
				}).Return(nil)
			},
			want: 0,
		},
		{
			name: "first completion starts at one",
			setup: func(store *mock.MockStore) {
				store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), today).Return(true, nil)
				store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), yesterday).Return(false, nil)
				store.EXPECT().UpsertStreak(gomock.Any(), &models.UserStreak{
					UserID: 1, StreakCount: 1, LastCompletedDate: today,
				}).Return(nil)
			},
			want: 1,
		},
		{
			name: "consecutive days extend the stored streak",
			setup: func(store *mock.MockStore) {
				store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), today).Return(true, nil)
				store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), yesterday).Return(true, nil)
				store.EXPECT().GetStreak(gomock.Any(), int64(1)).Return(&models.UserStreak{
					UserID: 1, StreakCount: 4, LastCompletedDate: yesterday,
				}, nil)
				store.EXPECT().UpsertStreak(gomock.Any(), &models.UserStreak{
					UserID: 1, StreakCount: 5, LastCompletedDate: today,
				}).Return(nil)
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			tt.setup(store)

			c := quest.NewStreakCalculator(store).WithClock(func() time.Time { return now })

			got, err := c.Recalculate(context.Background(), 1)
			if err != nil {
				t.Fatalf("Recalculate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Recalculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

package quest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quest/mock"
)

func TestDispatcher_Process(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	store := mock.NewMockStore(gomock.NewController(t))

	// Streak recompute: completion today, none yesterday.
	store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), "2024-06-05").Return(true, nil)
	store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), "2024-06-04").Return(false, nil)
	store.EXPECT().UpsertStreak(gomock.Any(), gomock.Any()).Return(nil)

	// Snapshot feeding the badge evaluator.
	store.EXPECT().GetUserPoints(gomock.Any(), int64(1)).Return(int64(10), nil)
	store.EXPECT().CountCompleted(gomock.Any(), int64(1)).Return(1, nil)

	store.EXPECT().ListBadges(gomock.Any()).Return([]*models.Badge{
		{ID: 1, Requirement: map[string]int64{quest.CounterQuestsCompleted: 1}},
	}, nil)
	store.EXPECT().GetCounters(gomock.Any(), int64(1)).Return(nil, nil)
	store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(1)).Return(false, nil)
	store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(1)).Return(nil)

	streaks := quest.NewStreakCalculator(store).WithClock(func() time.Time { return now })
	d := quest.NewDispatcher(store, streaks, quest.NewBadgeEvaluator(store))

	d.Process(context.Background(), 1)
}

func TestDispatcher_ProcessStreakFailureStillEvaluatesBadges(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))

	store.EXPECT().HasCompletionInPeriode(gomock.Any(), int64(1), gomock.Any()).
		Return(false, errors.New("db down"))

	// Streak failure degrades to zero streak days; badges still run.
	store.EXPECT().GetUserPoints(gomock.Any(), int64(1)).Return(int64(0), nil)
	store.EXPECT().CountCompleted(gomock.Any(), int64(1)).Return(0, nil)
	store.EXPECT().ListBadges(gomock.Any()).Return(nil, nil)
	store.EXPECT().GetCounters(gomock.Any(), int64(1)).Return(nil, nil)

	d := quest.NewDispatcher(store, quest.NewStreakCalculator(store), quest.NewBadgeEvaluator(store))
	d.Process(context.Background(), 1)
}

func TestDispatcher_QuestCompletedDropsWhenFull(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	d := quest.NewDispatcher(store, quest.NewStreakCalculator(store), quest.NewBadgeEvaluator(store))

	// Fill the queue past capacity; the overflow must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			d.QuestCompleted(int64(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("QuestCompleted blocked on a full queue")
	}
}

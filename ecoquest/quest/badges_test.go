package quest_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quest/mock"
)

func TestBadgeEvaluator_Evaluate(t *testing.T) {
	badges := []*models.Badge{
		{ID: 1, Name: "First Steps", Requirement: map[string]int64{quest.CounterQuestsCompleted: 1}},
		{ID: 2, Name: "Point Collector", Requirement: map[string]int64{quest.CounterPoints: 100}},
		{ID: 3, Name: "Recycler", Requirement: map[string]int64{"trash_recycled": 10, quest.CounterQuestsCompleted: 1}},
	}

	tests := []struct {
		name     string
		stats    quest.StatsSnapshot
		counters map[string]int64
		setup    func(store *mock.MockStore)
	}{
		{
			name:     "grants only the satisfied badges",
			stats:    quest.StatsSnapshot{Points: 20, QuestsCompleted: 2},
			counters: map[string]int64{"trash_recycled": 3},
			setup: func(store *mock.MockStore) {
				// First Steps qualifies; Point Collector needs 100 points and
				// Recycler needs 10 recycles, neither is met.
				store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(1)).Return(false, nil)
				store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(1)).Return(nil)
			},
		},
		{
			name:     "mixed real and pseudo counters must all hold",
			stats:    quest.StatsSnapshot{Points: 150, QuestsCompleted: 4},
			counters: map[string]int64{"trash_recycled": 12},
			setup: func(store *mock.MockStore) {
				store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(1)).Return(true, nil)
				store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(2)).Return(nil)
				store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(3)).Return(false, nil)
				store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(3)).Return(nil)
			},
		},
		{
			name:     "already granted badges are skipped",
			stats:    quest.StatsSnapshot{QuestsCompleted: 1},
			counters: map[string]int64{},
			setup: func(store *mock.MockStore) {
				store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(1)).Return(true, nil)
			},
		},
		{
			name:     "missing counter counts as zero",
			stats:    quest.StatsSnapshot{},
			counters: nil,
			setup:    func(store *mock.MockStore) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			store.EXPECT().ListBadges(gomock.Any()).Return(badges, nil)
			store.EXPECT().GetCounters(gomock.Any(), int64(1)).Return(tt.counters, nil)
			tt.setup(store)

			e := quest.NewBadgeEvaluator(store)
			if err := e.Evaluate(context.Background(), 1, tt.stats); err != nil {
				t.Errorf("Evaluate() error = %v", err)
			}
		})
	}
}

func TestBadgeEvaluator_FailureIsolation(t *testing.T) {
	badges := []*models.Badge{
		{ID: 1, Requirement: map[string]int64{quest.CounterQuestsCompleted: 1}},
		{ID: 2, Requirement: map[string]int64{quest.CounterQuestsCompleted: 1}},
	}

	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().ListBadges(gomock.Any()).Return(badges, nil)
	store.EXPECT().GetCounters(gomock.Any(), int64(1)).Return(nil, nil)

	// Badge 1 fails on the grant; badge 2 must still be evaluated.
	store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(1)).Return(false, nil)
	store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(1)).Return(errors.New("db down"))
	store.EXPECT().HasBadge(gomock.Any(), int64(1), int64(2)).Return(false, nil)
	store.EXPECT().GrantBadge(gomock.Any(), int64(1), int64(2)).Return(nil)

	e := quest.NewBadgeEvaluator(store)
	if err := e.Evaluate(context.Background(), 1, quest.StatsSnapshot{QuestsCompleted: 1}); err != nil {
		t.Errorf("Evaluate() error = %v, want nil despite per-badge failure", err)
	}
}

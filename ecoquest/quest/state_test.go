package quest

import (
	"testing"
	"time"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

func TestStateOf(t *testing.T) {
	finished := time.Now()

	tests := []struct {
		name    string
		attempt *models.UserQuest
		want    State
	}{
		{name: "nil attempt", attempt: nil, want: StateNotStarted},
		{name: "active", attempt: &models.UserQuest{ID: 1}, want: StateActive},
		{
			name:    "completed",
			attempt: &models.UserQuest{ID: 1, Completed: true, FinishedAt: &finished},
			want:    StateCompleted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.attempt); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

package quest

import (
	"time"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

// State is the explicit attempt state. Storage keeps it as nullable columns
// (no row, completed flag, finished timestamp); the service layer works with
// the tagged form so transition checks stay exhaustive.
type State string

const (
	StateNotStarted State = "not_started"
	StateActive     State = "active"
	StateCompleted  State = "completed"
)

func (s State) String() string { return string(s) }

// StateOf derives the tagged state from a stored attempt. A nil attempt is
// NotStarted.
func StateOf(attempt *models.UserQuest) State {
	switch {
	case attempt == nil:
		return StateNotStarted
	case attempt.Completed:
		return StateCompleted
	default:
		return StateActive
	}
}

// ProgressResult is the response shape of a progress or complete transition.
type ProgressResult struct {
	AttemptID    int64      `json:"attempt_id"`
	Progress     int        `json:"progress"`
	Target       int        `json:"target"`
	Completed    bool       `json:"completed"`
	PointsEarned int64      `json:"points_earned"`
	Finished     *time.Time `json:"finished"`
}

package quest

import (
	"context"
	"time"

	"log/slog"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

// RewardNotifier receives completion events after the transition committed.
// The dispatcher implements it; failures on this path never reach the caller.
type RewardNotifier interface {
	QuestCompleted(userID int64)
}

// Service is the quest progress engine. It owns every transition of the
// NotStarted -> Active -> Completed state machine; nothing else mutates
// attempt rows.
type Service struct {
	store   Store
	rewards RewardNotifier
	now     func() time.Time
}

func NewService(store Store, rewards RewardNotifier) *Service {
	return &Service{
		store:   store,
		rewards: rewards,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start creates an Active attempt with zero progress. The unique index on
// (user_id, quest_id, periode) is the source of truth for duplicates; the
// insert surfaces a ConflictError when the tuple already exists.
func (s *Service) Start(ctx context.Context, callerID, questID int64, periode string) (*models.UserQuest, error) {
	if questID <= 0 {
		return nil, &ValidationError{Field: "quest_id", Reason: "must be a positive integer"}
	}
	if periode == "" {
		return nil, &ValidationError{Field: "periode", Reason: "must not be empty"}
	}

	q, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if q.Expired(s.now()) {
		return nil, &ExpiredError{QuestID: questID}
	}

	attempt := &models.UserQuest{
		UserID:    callerID,
		QuestID:   questID,
		Periode:   periode,
		Progress:  0,
		Completed: false,
		StartedAt: s.now(),
	}
	if err := s.store.InsertAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	slog.Info("Quest attempt started",
		slog.Int64("user_id", callerID),
		slog.Int64("quest_id", questID),
		slog.String("periode", periode))
	return attempt, nil
}

// Progress advances an Active attempt by increment, capping at the quest
// target. Reaching the target completes the attempt and credits its points
// in the same transaction.
func (s *Service) Progress(ctx context.Context, callerID, attemptID int64, increment int) (*ProgressResult, error) {
	if increment <= 0 {
		return nil, &ValidationError{Field: "increment", Reason: "must be a positive integer"}
	}

	var result *ProgressResult
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		attempt, q, err := s.loadForTransition(ctx, tx, callerID, attemptID)
		if err != nil {
			return err
		}

		// Compare against the remaining distance instead of adding first:
		// summing a huge increment would wrap around and dodge the cap.
		var pointsEarned int64
		if increment >= q.Target-attempt.Progress {
			attempt.Progress = q.Target // cap, never overshoot
			pointsEarned = q.Points
			s.markCompleted(attempt)
		} else {
			attempt.Progress += increment
		}

		if err := tx.UpdateAttempt(ctx, attempt); err != nil {
			return err
		}
		if attempt.Completed {
			if err := tx.CreditPoints(ctx, attempt.UserID, q.Points); err != nil {
				return err
			}
		}

		result = &ProgressResult{
			AttemptID:    attempt.ID,
			Progress:     attempt.Progress,
			Target:       q.Target,
			Completed:    attempt.Completed,
			PointsEarned: pointsEarned,
			Finished:     attempt.FinishedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Completed {
		s.notifyCompleted(callerID, attemptID, result.PointsEarned)
	}
	return result, nil
}

// Complete force-completes an Active attempt without requiring the target
// to be reached. Same precondition set as Progress, same completion side
// effects, no progress capping.
func (s *Service) Complete(ctx context.Context, callerID, attemptID int64) (*ProgressResult, error) {
	var result *ProgressResult
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		attempt, q, err := s.loadForTransition(ctx, tx, callerID, attemptID)
		if err != nil {
			return err
		}

		s.markCompleted(attempt)
		if err := tx.UpdateAttempt(ctx, attempt); err != nil {
			return err
		}
		if err := tx.CreditPoints(ctx, attempt.UserID, q.Points); err != nil {
			return err
		}

		result = &ProgressResult{
			AttemptID:    attempt.ID,
			Progress:     attempt.Progress,
			Target:       q.Target,
			Completed:    true,
			PointsEarned: q.Points,
			Finished:     attempt.FinishedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCompleted(callerID, attemptID, result.PointsEarned)
	return result, nil
}

// Get returns an attempt after an ownership check.
func (s *Service) Get(ctx context.Context, callerID, attemptID int64) (*models.UserQuest, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != callerID {
		return nil, &ForbiddenError{Entity: "user quest", ID: attemptID}
	}
	return attempt, nil
}

// List returns the caller's attempts, optionally filtered by periode.
func (s *Service) List(ctx context.Context, callerID int64, periode string) ([]*models.UserQuest, error) {
	return s.store.ListAttempts(ctx, callerID, periode)
}

// loadForTransition locks the attempt row and checks every mutating-call
// precondition: existence, ownership, non-terminal state, quest deadline and
// periode currency. Periode is re-validated on every call, not just at
// start, so a stale attempt from a past day or week cannot keep accumulating
// progress under its old token.
func (s *Service) loadForTransition(ctx context.Context, tx Store, callerID, attemptID int64) (*models.UserQuest, *models.Quest, error) {
	attempt, err := tx.GetAttemptForUpdate(ctx, attemptID)
	if err != nil {
		return nil, nil, err
	}
	if attempt.UserID != callerID {
		return nil, nil, &ForbiddenError{Entity: "user quest", ID: attemptID}
	}
	if state := StateOf(attempt); state == StateCompleted {
		return nil, nil, &InvalidStateError{AttemptID: attemptID, State: state}
	}

	q, err := tx.GetQuest(ctx, attempt.QuestID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	if q.Expired(now) {
		return nil, nil, &ExpiredError{QuestID: q.ID}
	}
	switch q.Category {
	case models.QuestCategoryDaily:
		if !IsValidDaily(attempt.Periode, now) {
			return nil, nil, &PeriodeMismatchError{Periode: attempt.Periode, Category: q.Category}
		}
	case models.QuestCategoryWeekly:
		if !IsValidWeekly(attempt.Periode, now) {
			return nil, nil, &PeriodeMismatchError{Periode: attempt.Periode, Category: q.Category}
		}
	}

	return attempt, q, nil
}

func (s *Service) markCompleted(attempt *models.UserQuest) {
	now := s.now()
	attempt.Completed = true
	attempt.FinishedAt = &now
}

func (s *Service) notifyCompleted(userID, attemptID, points int64) {
	slog.Info("Quest attempt completed",
		slog.Int64("user_id", userID),
		slog.Int64("attempt_id", attemptID),
		slog.Int64("points_earned", points))
	if s.rewards != nil {
		s.rewards.QuestCompleted(userID)
	}
}

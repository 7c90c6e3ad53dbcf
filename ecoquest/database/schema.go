package database

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

// InitializeSchema creates all required tables and indexes. Safe to run
// repeatedly; everything is IF NOT EXISTS.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Quest)(nil),
		(*models.UserQuest)(nil),
		(*models.UserCounter)(nil),
		(*models.UserStreak)(nil),
		(*models.Badge)(nil),
		(*models.UserBadge)(nil),
		(*models.QuizQuestion)(nil),
		(*models.QuizChoice)(nil),
		(*models.QuizSession)(nil),
		(*models.QuizAnswer)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// The unique indexes below are load-bearing: the attempt tuple closes
	// the concurrent-start race, the badge pair makes grants idempotent and
	// the session day enforces one quiz per user per day.
	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_quests_attempt ON user_quests(user_id, quest_id, periode);",
		"CREATE INDEX IF NOT EXISTS idx_user_quests_user_id ON user_quests(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_quests_completed ON user_quests(user_id, periode) WHERE completed = true;",
		"CREATE INDEX IF NOT EXISTS idx_quests_category ON quests(category);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_counters_name ON user_counters(user_id, counter_name);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_badges_pair ON user_badges(user_id, badge_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_badges_user_id ON user_badges(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_quiz_sessions_day ON quiz_sessions(user_id, date);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_choices_question ON quiz_choices(question_id);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_answers_session ON quiz_answers(session_id);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Database schema initialized",
		slog.String("type", "db"),
		slog.Int("tables", len(tables)),
		slog.Int("indexes", len(indexes)))
	return nil
}

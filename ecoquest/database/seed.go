package database

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"
)

// SeedContent upserts the default quest, badge and quiz content. Keyed on
// natural names so re-running a deploy updates definitions in place.
func (db *DB) SeedContent(ctx context.Context) error {
	if err := db.seedQuests(ctx); err != nil {
		return err
	}
	if err := db.seedBadges(ctx); err != nil {
		return err
	}
	if err := db.seedQuizQuestions(ctx); err != nil {
		return err
	}
	return nil
}

func (db *DB) seedQuests(ctx context.Context) error {
	type questDef struct {
		Name        string
		Description string
		Category    string
		Points      int64
		Target      int
	}

	quests := []questDef{
		{"Recycle Rookie", "Recycle 3 pieces of trash today", "daily", 10, 3},
		{"Tumbler Time", "Use a reusable tumbler instead of a plastic cup", "daily", 5, 1},
		{"Green Commute", "Take public transport twice today", "daily", 10, 2},
		{"Plastic-Free Lunch", "Have a lunch with zero single-use plastic", "daily", 15, 1},
		{"Recycle Regular", "Recycle 20 pieces of trash this week", "weekly", 50, 20},
		{"Transit Hero", "Take public transport 8 times this week", "weekly", 60, 8},
		{"Tumbler Streak", "Use your tumbler 5 days this week", "weekly", 40, 5},
	}

	insertSQL := `
        INSERT INTO quests (name, description, category, points, target, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, true, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
        ON CONFLICT (name) DO UPDATE SET
            description = EXCLUDED.description,
            category = EXCLUDED.category,
            points = EXCLUDED.points,
            target = EXCLUDED.target,
            updated_at = CURRENT_TIMESTAMP;
    `

	for _, q := range quests {
		if _, err := db.ExecWithLog(ctx, insertSQL, q.Name, q.Description, q.Category, q.Points, q.Target); err != nil {
			return fmt.Errorf("failed to upsert quest %s: %w", q.Name, err)
		}
	}

	slog.Info("Quest definitions seeded", slog.String("type", "db"), slog.Int("count", len(quests)))
	return nil
}

func (db *DB) seedBadges(ctx context.Context) error {
	type badgeDef struct {
		Name        string
		Description string
		Requirement map[string]int64
	}

	badges := []badgeDef{
		{"First Steps", "Complete your first quest", map[string]int64{"questsCompleted": 1}},
		{"Point Collector", "Earn 100 points", map[string]int64{"points": 100}},
		{"Week Warrior", "Keep a 7 day streak", map[string]int64{"streakDays": 7}},
		{"Recycling Champion", "Recycle 50 pieces of trash", map[string]int64{"trash_recycled": 50}},
		{"Tumbler Devotee", "Reuse your tumbler 30 times", map[string]int64{"tumblr_reused": 30}},
		{"Transit Regular", "Use public transport 40 times", map[string]int64{"public_transport": 40}},
		{"Eco All-Rounder", "Recycle 20, reuse 10 and ride 10", map[string]int64{"trash_recycled": 20, "tumblr_reused": 10, "public_transport": 10}},
	}

	insertSQL := `
        INSERT INTO badges (name, description, requirement, created_at)
        VALUES ($1, $2, $3::jsonb, CURRENT_TIMESTAMP)
        ON CONFLICT (name) DO UPDATE SET
            description = EXCLUDED.description,
            requirement = EXCLUDED.requirement;
    `

	for _, b := range badges {
		req, err := json.Marshal(b.Requirement)
		if err != nil {
			return fmt.Errorf("failed to marshal badge requirement for %s: %w", b.Name, err)
		}
		if _, err := db.ExecWithLog(ctx, insertSQL, b.Name, b.Description, string(req)); err != nil {
			return fmt.Errorf("failed to upsert badge %s: %w", b.Name, err)
		}
	}

	slog.Info("Badge definitions seeded", slog.String("type", "db"), slog.Int("count", len(badges)))
	return nil
}

func (db *DB) seedQuizQuestions(ctx context.Context) error {
	type choice struct {
		Text    string
		Correct bool
	}
	type question struct {
		Text    string
		Choices []choice
	}

	questions := []question{
		{"How long does a plastic bottle take to decompose?", []choice{
			{"Around 10 years", false}, {"Around 50 years", false}, {"Around 450 years", true}, {"It decomposes within a year", false},
		}},
		{"Which bin does a greasy pizza box belong in?", []choice{
			{"Paper recycling", false}, {"General waste or compost", true}, {"Glass recycling", false}, {"Plastic recycling", false},
		}},
		{"What share of global greenhouse emissions comes from transport?", []choice{
			{"About 2%", false}, {"About 15%", true}, {"About 50%", false}, {"About 80%", false},
		}},
		{"Which of these saves the most water?", []choice{
			{"Shorter showers", true}, {"Turning off lights", false}, {"Using a tumbler", false}, {"Taking the bus", false},
		}},
		{"What does the chasing-arrows number on plastic indicate?", []choice{
			{"How many times it was recycled", false}, {"The resin type", true}, {"Its toxicity level", false}, {"The recycling fee", false},
		}},
		{"Which material can be recycled indefinitely without quality loss?", []choice{
			{"Paper", false}, {"Plastic", false}, {"Glass", true}, {"Styrofoam", false},
		}},
		{"What is the most effective way to cut household food waste?", []choice{
			{"Buying in bulk", false}, {"Meal planning", true}, {"Bigger fridges", false}, {"Eating out more", false},
		}},
	}

	// Questions are only inserted when the table is empty; choices carry the
	// correct-answer flag, so editing them in place would invalidate past
	// sessions.
	var count int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM quiz_questions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count quiz questions: %w", err)
	}
	if count > 0 {
		slog.Info("Quiz questions already seeded, skipping", slog.String("type", "db"), slog.Int("count", count))
		return nil
	}

	for _, q := range questions {
		var questionID int64
		err := db.pool.QueryRow(ctx,
			"INSERT INTO quiz_questions (question_text) VALUES ($1) RETURNING id",
			q.Text,
		).Scan(&questionID)
		if err != nil {
			return fmt.Errorf("failed to insert quiz question: %w", err)
		}

		for _, c := range q.Choices {
			if _, err := db.ExecWithLog(ctx,
				"INSERT INTO quiz_choices (question_id, choice_text, is_correct) VALUES ($1, $2, $3)",
				questionID, c.Text, c.Correct,
			); err != nil {
				return fmt.Errorf("failed to insert quiz choice: %w", err)
			}
		}
	}

	slog.Info("Quiz questions seeded", slog.String("type", "db"), slog.Int("count", len(questions)))
	return nil
}

package store

import (
	"database/sql"

	"github.com/trucost-app/trucost/internal/model"
)

// SaveGoal inserts or replaces the user's goal.
func (s *Store) SaveGoal(g model.Goal) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals
		(id, user_id, name, target_amount, starting_amount, weekly_savings, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Name, g.TargetAmount, g.StartingAmount, g.WeeklySavings,
		formatTime(g.CreatedAt), formatTime(g.UpdatedAt),
	)
	return err
}

// GoalForUser returns the user's goal, or nil when none is set.
// The design assumes one goal per user; the oldest wins if more exist.
func (s *Store) GoalForUser(userID string) (*model.Goal, error) {
	row := s.db.QueryRow(`SELECT id, user_id, name, target_amount, starting_amount, weekly_savings, created_at, updated_at
		FROM goals WHERE user_id = ? ORDER BY created_at LIMIT 1`, userID)

	var g model.Goal
	var createdAt, updatedAt string
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.StartingAmount, &g.WeeklySavings, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	g.CreatedAt = parseTime(createdAt)
	g.UpdatedAt = parseTime(updatedAt)
	return &g, nil
}

package store

import (
	"database/sql"
	"time"

	"github.com/trucost-app/trucost/internal/model"
)

// SaveDecision appends a decision to the ledger. Decisions are
// immutable; there is deliberately no update or delete.
func (s *Store) SaveDecision(d model.Decision) error {
	return insertDecision(s.db, d)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertDecision(e execer, d model.Decision) error {
	_, err := e.Exec(`INSERT INTO decisions
		(id, user_id, name, cost, hourly_wage_used, category_id, computed_hours, computed_goal_delay_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.Name, d.Cost, d.HourlyWageUsed, d.CategoryID,
		d.ComputedHours, d.ComputedGoalDelayDays, formatTime(d.CreatedAt),
	)
	return err
}

// DecisionFilter narrows ListDecisions. Zero values mean no filter.
type DecisionFilter struct {
	CategoryID string
	Since      time.Time
}

// ListDecisions returns the user's ledger, newest first.
func (s *Store) ListDecisions(userID string, f DecisionFilter) ([]model.Decision, error) {
	query := `SELECT id, user_id, name, cost, hourly_wage_used, category_id, computed_hours, computed_goal_delay_days, created_at
		FROM decisions WHERE user_id = ?`
	args := []any{userID}

	if f.CategoryID != "" {
		query += " AND category_id = ?"
		args = append(args, f.CategoryID)
	}
	if !f.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, formatTime(f.Since))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanDecisions(rows)
}

// TopDelays returns the user's decisions with the largest goal delays,
// excluding those that caused none.
func (s *Store) TopDelays(userID string, limit int) ([]model.Decision, error) {
	rows, err := s.db.Query(`SELECT id, user_id, name, cost, hourly_wage_used, category_id, computed_hours, computed_goal_delay_days, created_at
		FROM decisions WHERE user_id = ? AND computed_goal_delay_days > 0
		ORDER BY computed_goal_delay_days DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanDecisions(rows)
}

func scanDecisions(rows *sql.Rows) ([]model.Decision, error) {
	var decisions []model.Decision
	for rows.Next() {
		var d model.Decision
		var categoryID sql.NullString
		var createdAt string
		err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Cost, &d.HourlyWageUsed,
			&categoryID, &d.ComputedHours, &d.ComputedGoalDelayDays, &createdAt)
		if err != nil {
			return nil, err
		}
		if categoryID.Valid {
			d.CategoryID = categoryID.String
		}
		d.CreatedAt = parseTime(createdAt)
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

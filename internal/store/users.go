package store

import (
	"database/sql"

	"github.com/trucost-app/trucost/internal/model"
)

// SaveUser inserts or replaces the user profile.
func (s *Store) SaveUser(u model.User) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO users
		(id, email, name, default_wage, wage_type, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.DefaultWage, string(u.WageType), u.Currency, formatTime(u.CreatedAt),
	)
	return err
}

// CurrentUser returns the local profile, or nil if none exists.
// The database holds at most one user; the oldest wins if more exist.
func (s *Store) CurrentUser() (*model.User, error) {
	row := s.db.QueryRow(`SELECT id, email, name, default_wage, wage_type, currency, created_at
		FROM users ORDER BY created_at LIMIT 1`)

	var u model.User
	var wageType, createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.DefaultWage, &wageType, &u.Currency, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.WageType = model.WageType(wageType)
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// DeleteAllUsers clears the local profile. Ledger and wishlist rows
// stay on disk; logout only removes the login.
func (s *Store) DeleteAllUsers() error {
	_, err := s.db.Exec("DELETE FROM users")
	return err
}

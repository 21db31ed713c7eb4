package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/trucost-app/trucost/internal/model"
)

// ErrDefaultCategory is returned when deleting a seeded category.
var ErrDefaultCategory = errors.New("store: default categories cannot be deleted")

// ErrEmptyName is returned when saving a row with a blank name.
var ErrEmptyName = errors.New("store: name must not be empty")

// SaveCategory inserts or replaces a category. The name must be
// non-empty after trimming.
func (s *Store) SaveCategory(c model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyName
	}
	isDefault := 0
	if c.IsDefault {
		isDefault = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO categories
		(id, user_id, name, is_default, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, isDefault, formatTime(c.CreatedAt),
	)
	return err
}

// ListCategories returns all categories for a user, oldest first.
func (s *Store) ListCategories(userID string) ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT id, user_id, name, is_default, created_at
		FROM categories WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var isDefault int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &isDefault, &createdAt); err != nil {
			return nil, err
		}
		c.IsDefault = isDefault != 0
		c.CreatedAt = parseTime(createdAt)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CategoryByName looks up a user's category by exact name.
func (s *Store) CategoryByName(userID, name string) (*model.Category, error) {
	row := s.db.QueryRow(`SELECT id, user_id, name, is_default, created_at
		FROM categories WHERE user_id = ? AND name = ?`, userID, name)

	var c model.Category
	var isDefault int
	var createdAt string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &isDefault, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.IsDefault = isDefault != 0
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

// DeleteCategory removes a non-default category. Decisions and
// wishlist items keep their category_id; readers treat the dangling
// reference as uncategorized.
func (s *Store) DeleteCategory(id string) error {
	var isDefault int
	err := s.db.QueryRow("SELECT is_default FROM categories WHERE id = ?", id).Scan(&isDefault)
	if err == sql.ErrNoRows {
		return fmt.Errorf("store: category %s not found", id)
	}
	if err != nil {
		return err
	}
	if isDefault != 0 {
		return ErrDefaultCategory
	}

	_, err = s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	return err
}

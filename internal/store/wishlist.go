package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/trucost-app/trucost/internal/model"
)

// SaveWishlistItem inserts or replaces a wishlist item.
func (s *Store) SaveWishlistItem(w model.WishlistItem) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO wishlist
		(id, user_id, name, cost, category_id, note, image_url, status, created_at, purchased_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, w.Name, w.Cost, w.CategoryID, w.Note, w.ImageURL,
		string(w.Status), formatTime(w.CreatedAt), formatTime(w.PurchasedAt),
	)
	return err
}

// GetWishlistItem returns one item by id, or nil if absent.
func (s *Store) GetWishlistItem(id string) (*model.WishlistItem, error) {
	row := s.db.QueryRow(`SELECT id, user_id, name, cost, category_id, note, image_url, status, created_at, purchased_at
		FROM wishlist WHERE id = ?`, id)

	w, err := scanWishlistRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWishlist returns a user's items with the given status, newest
// first. An empty status returns everything.
func (s *Store) ListWishlist(userID string, status model.WishlistStatus) ([]model.WishlistItem, error) {
	query := `SELECT id, user_id, name, cost, category_id, note, image_url, status, created_at, purchased_at
		FROM wishlist WHERE user_id = ?`
	args := []any{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.WishlistItem
	for rows.Next() {
		w, err := scanWishlistRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

// ArchiveItem moves a wishlisted item to archived. Terminal states are
// left untouched.
func (s *Store) ArchiveItem(id string) error {
	item, err := s.GetWishlistItem(id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("store: wishlist item %s not found", id)
	}
	if !item.Status.CanTransition(model.StatusArchived) {
		return fmt.Errorf("store: cannot archive item in status %s", item.Status)
	}

	_, err = s.db.Exec("UPDATE wishlist SET status = ? WHERE id = ?", string(model.StatusArchived), id)
	return err
}

// MarkPurchased flips a wishlisted item to purchased and appends the
// corresponding decision in one transaction, so the ledger can never
// show a purchase without its decision or vice versa.
func (s *Store) MarkPurchased(itemID string, d model.Decision, purchasedAt time.Time) error {
	item, err := s.GetWishlistItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("store: wishlist item %s not found", itemID)
	}
	if !item.Status.CanTransition(model.StatusPurchased) {
		return fmt.Errorf("store: cannot purchase item in status %s", item.Status)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec("UPDATE wishlist SET status = ?, purchased_at = ? WHERE id = ?",
		string(model.StatusPurchased), formatTime(purchasedAt), itemID)
	if err != nil {
		return err
	}

	if err := insertDecision(tx, d); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWishlistRow(row rowScanner) (*model.WishlistItem, error) {
	var w model.WishlistItem
	var categoryID, note, imageURL, purchasedAt sql.NullString
	var status, createdAt string

	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Cost, &categoryID, &note,
		&imageURL, &status, &createdAt, &purchasedAt)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		w.CategoryID = categoryID.String
	}
	if note.Valid {
		w.Note = note.String
	}
	if imageURL.Valid {
		w.ImageURL = imageURL.String
	}
	w.Status = model.WishlistStatus(status)
	w.CreatedAt = parseTime(createdAt)
	if purchasedAt.Valid {
		w.PurchasedAt = parseTime(purchasedAt.String)
	}
	return &w, nil
}

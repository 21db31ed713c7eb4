package model

import "time"

// WishlistStatus tracks the lifecycle of a candidate purchase.
type WishlistStatus string

const (
	// StatusWishlisted is the initial state.
	StatusWishlisted WishlistStatus = "wishlisted"
	// StatusPurchased is terminal; reaching it emits a Decision.
	StatusPurchased WishlistStatus = "purchased"
	// StatusArchived is terminal with no side effect.
	StatusArchived WishlistStatus = "archived"
)

// CanTransition reports whether a status change is allowed.
// Only wishlisted items may move, and nothing leaves a terminal state.
func (s WishlistStatus) CanTransition(to WishlistStatus) bool {
	if s != StatusWishlisted {
		return false
	}
	return to == StatusPurchased || to == StatusArchived
}

// WishlistItem is a candidate future purchase not yet committed as a
// Decision.
type WishlistItem struct {
	ID          string
	UserID      string
	Name        string
	Cost        float64
	CategoryID  string
	Note        string
	ImageURL    string
	Status      WishlistStatus
	CreatedAt   time.Time
	PurchasedAt time.Time // zero unless Status is purchased
}

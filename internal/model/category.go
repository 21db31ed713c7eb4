package model

import "time"

// Category labels decisions and wishlist items. Default categories are
// seeded at setup and cannot be deleted.
type Category struct {
	ID        string
	UserID    string
	Name      string
	IsDefault bool
	CreatedAt time.Time
}

// DefaultCategories are created for every new user.
var DefaultCategories = []string{
	"Food", "Subscriptions", "Shopping", "Bills", "Travel", "Other",
}

package model

import "time"

// Goal is the user's single active savings goal. Saving again replaces
// the amounts in place; the UI treats it as a singleton per user.
type Goal struct {
	ID             string
	UserID         string
	Name           string
	TargetAmount   float64
	StartingAmount float64
	WeeklySavings  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Package model defines domain types for trucost users, goals, and purchases.
package model

import "time"

// WageType distinguishes how a user's wage is quoted.
type WageType string

const (
	// WageHourly means DefaultWage is an hourly rate.
	WageHourly WageType = "hourly"
	// WageYearly means DefaultWage is an annual salary.
	WageYearly WageType = "yearly"
)

// ParseWageType validates a wage type string.
func ParseWageType(s string) (WageType, bool) {
	switch WageType(s) {
	case WageHourly, WageYearly:
		return WageType(s), true
	}
	return "", false
}

// User holds the local profile. There is at most one per database;
// logout clears the local copy only.
type User struct {
	ID          string
	Email       string
	Name        string
	DefaultWage float64
	WageType    WageType
	Currency    string
	CreatedAt   time.Time
}

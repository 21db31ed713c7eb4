package model

import "time"

// Decision is an immutable ledger entry for a committed purchase.
// It snapshots the wage and goal delay current at commit time and is
// never updated or deleted after insertion.
type Decision struct {
	ID                    string
	UserID                string
	Name                  string
	Cost                  float64
	HourlyWageUsed        float64
	CategoryID            string
	ComputedHours         float64
	ComputedGoalDelayDays int
	CreatedAt             time.Time
}

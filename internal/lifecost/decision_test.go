package lifecost

import (
	"testing"
	"time"

	"github.com/trucost-app/trucost/internal/model"
)

func testUser(wage float64, wt model.WageType) model.User {
	return model.User{
		ID:          "user-1",
		Email:       "alex@example.com",
		Name:        "Alex",
		DefaultWage: wage,
		WageType:    wt,
		Currency:    "USD",
	}
}

func TestBuildDecision(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	goal := testGoal(5000, 0, 100)

	d := BuildDecision(testUser(25, model.WageHourly), "Headphones", 100, "cat-1", &goal, now)

	if d.ID == "" {
		t.Error("ID is empty, want a fresh uuid")
	}
	if d.Name != "Headphones" {
		t.Errorf("Name = %q, want Headphones", d.Name)
	}
	if d.HourlyWageUsed != 25 {
		t.Errorf("HourlyWageUsed = %v, want 25", d.HourlyWageUsed)
	}
	if d.ComputedHours != 4.00 {
		t.Errorf("ComputedHours = %v, want 4.00", d.ComputedHours)
	}
	if d.ComputedGoalDelayDays != 7 {
		t.Errorf("ComputedGoalDelayDays = %d, want 7", d.ComputedGoalDelayDays)
	}
	if !d.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", d.CreatedAt, now)
	}
}

func TestBuildDecision_EmptyNameFallback(t *testing.T) {
	d := BuildDecision(testUser(25, model.WageHourly), "", 10, "cat-1", nil, time.Now())
	if d.Name != "Unspecified Purchase" {
		t.Errorf("Name = %q, want fallback", d.Name)
	}
}

func TestBuildDecision_FreshIDs(t *testing.T) {
	u := testUser(25, model.WageHourly)
	a := BuildDecision(u, "a", 1, "cat-1", nil, time.Now())
	b := BuildDecision(u, "b", 1, "cat-1", nil, time.Now())
	if a.ID == b.ID {
		t.Errorf("two decisions share ID %q", a.ID)
	}
}

func TestBuildDecision_UsesWageAtCommitTime(t *testing.T) {
	// The wage stored when an item was wishlisted is irrelevant: the
	// ledger entry reflects whatever the profile says at commit.
	now := time.Now()
	item := model.WishlistItem{
		ID:         "item-1",
		UserID:     "user-1",
		Name:       "Espresso Machine",
		Cost:       500,
		CategoryID: "cat-2",
		Status:     model.StatusWishlisted,
	}

	d := BuildPurchaseDecision(testUser(60000, model.WageYearly), item, nil, now)

	if d.Name != "Wishlist: Espresso Machine" {
		t.Errorf("Name = %q, want wishlist prefix", d.Name)
	}
	if d.ComputedHours != 17.33 {
		t.Errorf("ComputedHours = %v, want 17.33 at current wage", d.ComputedHours)
	}
	if d.CategoryID != "cat-2" {
		t.Errorf("CategoryID = %q, want cat-2", d.CategoryID)
	}
	if d.ComputedGoalDelayDays != 0 {
		t.Errorf("ComputedGoalDelayDays = %d, want 0 without a goal", d.ComputedGoalDelayDays)
	}
}

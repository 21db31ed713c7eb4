package lifecost

import (
	"time"

	"github.com/google/uuid"

	"github.com/trucost-app/trucost/internal/model"
)

// fallbackName is used when a decision is committed without a name.
const fallbackName = "Unspecified Purchase"

// BuildDecision assembles an immutable ledger entry for a committed
// purchase. Hours and goal delay are recomputed from the wage and goal
// current at commit time, not from any values captured earlier.
func BuildDecision(user model.User, name string, cost float64, categoryID string, goal *model.Goal, now time.Time) model.Decision {
	if name == "" {
		name = fallbackName
	}

	profile := Normalize(user.DefaultWage, user.WageType)
	impact := ComputeImpact(cost, profile)

	return model.Decision{
		ID:                    uuid.NewString(),
		UserID:                user.ID,
		Name:                  name,
		Cost:                  cost,
		HourlyWageUsed:        profile.EffectiveHourly,
		CategoryID:            categoryID,
		ComputedHours:         impact.HoursOfWork,
		ComputedGoalDelayDays: DelayDays(cost, goal),
		CreatedAt:             now,
	}
}

// BuildPurchaseDecision is the wishlist variant of BuildDecision: the
// item's name and category carry over with a "Wishlist: " prefix so
// the ledger shows where the purchase originated.
func BuildPurchaseDecision(user model.User, item model.WishlistItem, goal *model.Goal, now time.Time) model.Decision {
	d := BuildDecision(user, "Wishlist: "+item.Name, item.Cost, item.CategoryID, goal, now)
	return d
}

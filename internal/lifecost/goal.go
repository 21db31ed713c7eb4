package lifecost

import (
	"math"
	"time"

	"github.com/trucost-app/trucost/internal/model"
)

// DelayDays computes how many days a purchase pushes out the savings
// goal: the cost in weeks-of-savings, converted to days and rounded up
// so a partial day of delay counts as a full day. A missing goal or a
// non-positive savings rate means no measurable delay.
func DelayDays(cost float64, goal *model.Goal) int {
	if goal == nil || goal.WeeklySavings <= 0 {
		return 0
	}
	return int(math.Ceil(cost / goal.WeeklySavings * 7))
}

// Timeline is the projected path to goal completion.
type Timeline struct {
	Percent        int
	Remaining      float64
	WeeksToGo      int
	CompletionDate time.Time
	// Reachable is false when money remains but the weekly savings
	// rate is zero, so no completion date can be projected.
	Reachable bool
}

// ProjectTimeline derives percent-complete and the projected
// completion date for a goal as of now. An already-funded goal is 100%
// complete today regardless of the savings rate.
func ProjectTimeline(goal model.Goal, now time.Time) Timeline {
	remaining := goal.TargetAmount - goal.StartingAmount
	if remaining <= 0 {
		return Timeline{
			Percent:        100,
			CompletionDate: now,
			Reachable:      true,
		}
	}

	tl := Timeline{Remaining: remaining}
	if goal.TargetAmount > 0 {
		tl.Percent = int(math.Min(100, math.Floor(goal.StartingAmount/goal.TargetAmount*100)))
	}

	if goal.WeeklySavings <= 0 {
		return tl
	}

	tl.WeeksToGo = int(math.Ceil(remaining / goal.WeeklySavings))
	tl.CompletionDate = now.AddDate(0, 0, tl.WeeksToGo*7)
	tl.Reachable = true
	return tl
}

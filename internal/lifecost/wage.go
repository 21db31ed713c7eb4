// Package lifecost computes the life-time cost of purchases: hours of
// work, monthly income impact, and savings-goal delays.
package lifecost

import "github.com/trucost-app/trucost/internal/model"

const (
	// yearlyWorkHours is the standard work year: 40 h/week × 52 weeks.
	yearlyWorkHours = 2080
	// monthlyWorkHours is the average work hours per month at 40 h/week.
	monthlyWorkHours = 166.67
	// workdayHours is the assumed length of one work day.
	workdayHours = 8
)

// WageProfile is a wage normalized to hourly and monthly rates.
type WageProfile struct {
	EffectiveHourly  float64
	EffectiveMonthly float64
}

// Normalize converts a stored wage into effective rates. A yearly
// salary is divided across the standard work year; an hourly wage is
// scaled up to average monthly hours. A zero wage yields zero rates,
// and all downstream divisions treat that as a guarded zero result.
func Normalize(wage float64, wageType model.WageType) WageProfile {
	if wageType == model.WageYearly {
		return WageProfile{
			EffectiveHourly:  wage / yearlyWorkHours,
			EffectiveMonthly: wage / 12,
		}
	}
	return WageProfile{
		EffectiveHourly:  wage,
		EffectiveMonthly: wage * monthlyWorkHours,
	}
}

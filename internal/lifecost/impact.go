package lifecost

import "math"

// Impact holds the derived metrics for a single purchase cost.
type Impact struct {
	// HoursOfWork is the cost expressed in hours of work, 2 dp.
	HoursOfWork float64
	// IncomeImpactPercent is the share of one month's income consumed,
	// clamped to [0, 100]. The clamp is a display decision: costs above
	// a full month of income all read as 100.
	IncomeImpactPercent float64
	// RecoveryWorkDays is the number of 8-hour work days needed to earn
	// the cost back, 1 dp.
	RecoveryWorkDays float64
}

// ComputeImpact derives the impact metrics for a cost against a
// normalized wage. Zero rates yield zero metrics, never Inf or NaN.
func ComputeImpact(cost float64, p WageProfile) Impact {
	var im Impact

	if p.EffectiveHourly > 0 {
		im.HoursOfWork = round2(cost / p.EffectiveHourly)
		im.RecoveryWorkDays = round1(cost / (p.EffectiveHourly * workdayHours))
	}

	if p.EffectiveMonthly > 0 {
		im.IncomeImpactPercent = math.Min(100, cost/p.EffectiveMonthly*100)
	}

	return im
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package lifecost

import (
	"testing"

	"github.com/trucost-app/trucost/internal/model"
)

func TestComputeImpact_HourlyScenario(t *testing.T) {
	// $25/hr, $100 purchase: exactly 4 hours of work.
	p := Normalize(25, model.WageHourly)
	im := ComputeImpact(100, p)

	if im.HoursOfWork != 4.00 {
		t.Errorf("HoursOfWork = %v, want 4.00", im.HoursOfWork)
	}
	if im.RecoveryWorkDays != 0.5 {
		t.Errorf("RecoveryWorkDays = %v, want 0.5", im.RecoveryWorkDays)
	}
}

func TestComputeImpact_YearlyScenario(t *testing.T) {
	// $60,000/yr salary, $500 purchase.
	p := Normalize(60000, model.WageYearly)
	im := ComputeImpact(500, p)

	if im.HoursOfWork != 17.33 {
		t.Errorf("HoursOfWork = %v, want 17.33", im.HoursOfWork)
	}
	if !approxEqual(im.IncomeImpactPercent, 10, 0.001) {
		t.Errorf("IncomeImpactPercent = %v, want 10", im.IncomeImpactPercent)
	}
}

func TestComputeImpact_ZeroWageGuards(t *testing.T) {
	im := ComputeImpact(100, WageProfile{})

	if im.HoursOfWork != 0 {
		t.Errorf("HoursOfWork = %v, want 0 for zero wage", im.HoursOfWork)
	}
	if im.IncomeImpactPercent != 0 {
		t.Errorf("IncomeImpactPercent = %v, want 0 for zero income", im.IncomeImpactPercent)
	}
	if im.RecoveryWorkDays != 0 {
		t.Errorf("RecoveryWorkDays = %v, want 0 for zero wage", im.RecoveryWorkDays)
	}
}

func TestComputeImpact_PercentClamp(t *testing.T) {
	// Costs far above monthly income still read as 100%.
	p := Normalize(15, model.WageHourly)

	for _, cost := range []float64{0, 50, 2500.12, 99999, 1e9} {
		im := ComputeImpact(cost, p)
		if im.IncomeImpactPercent < 0 || im.IncomeImpactPercent > 100 {
			t.Errorf("IncomeImpactPercent(%v) = %v, want within [0, 100]", cost, im.IncomeImpactPercent)
		}
	}

	im := ComputeImpact(1e9, p)
	if im.IncomeImpactPercent != 100 {
		t.Errorf("IncomeImpactPercent = %v, want clamped to 100", im.IncomeImpactPercent)
	}
}

func TestComputeImpact_RecoveryRoundTrip(t *testing.T) {
	// Recovery days times daily earnings should come back to the cost,
	// within the 1 dp rounding applied to the day count.
	p := Normalize(30, model.WageHourly)
	cost := 480.0

	im := ComputeImpact(cost, p)
	back := im.RecoveryWorkDays * p.EffectiveHourly * 8
	if !approxEqual(back, cost, p.EffectiveHourly*8*0.05+0.001) {
		t.Errorf("round trip = %v, want ~%v", back, cost)
	}
}

func TestComputeImpact_Idempotent(t *testing.T) {
	p := Normalize(52000, model.WageYearly)

	first := ComputeImpact(123.45, p)
	second := ComputeImpact(123.45, p)
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}

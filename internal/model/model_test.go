package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProfitLoss_RecomputeTotals(t *testing.T) {
	pl := ProfitLoss{
		TuitionRevenue:  dec("100"),
		OtherRevenue:    dec("10"),
		InterestIncome:  dec("2"),
		RentExpense:     dec("20"),
		StaffCost:       dec("40"),
		OtherOpex:       dec("10"),
		Depreciation:    dec("8"),
		InterestExpense: dec("3"),
		Zakat:           dec("1"),
	}
	pl.RecomputeTotals()

	assert.Equal(t, "110", pl.TotalRevenue.String())
	assert.Equal(t, "70", pl.TotalOpex.String())
	assert.Equal(t, "40", pl.EBITDA.String())
	assert.Equal(t, "32", pl.EBIT.String())
	// EBT = EBIT - interest expense + interest income.
	assert.Equal(t, "31", pl.EBT.String())
	assert.Equal(t, "30", pl.NetIncome.String())
}

func TestBalanceSheet_BalanceDifference(t *testing.T) {
	bs := BalanceSheet{
		Cash:                    dec("100"),
		Receivables:             dec("50"),
		GrossPPE:                dec("200"),
		AccumulatedDepreciation: dec("80"),
		Payables:                dec("30"),
		Debt:                    dec("40"),
		Equity:                  dec("190"),
	}
	bs.RecomputeTotals()

	assert.Equal(t, "120", bs.NetPPE.String())
	assert.Equal(t, "270", bs.TotalAssets.String())
	assert.Equal(t, "70", bs.TotalLiabilities.String())
	assert.Equal(t, "10", bs.BalanceDifference.String())
}

func TestTolerance_RelaxedForBridging(t *testing.T) {
	modeled := FinancialPeriod{Type: PeriodModeled}
	bridging := FinancialPeriod{Type: PeriodBridging}
	assert.True(t, modeled.Tolerance().Equal(num.BalanceSheetTolerance))
	assert.True(t, bridging.Tolerance().Equal(num.BridgingTolerance))
	assert.True(t, bridging.Tolerance().GreaterThan(modeled.Tolerance()))
}

func TestCurriculum_EnrollmentRamp(t *testing.T) {
	c := CurriculumConfig{
		Enabled:           true,
		Capacity:          dec("3000"),
		InitialEnrollment: dec("2400"),
		RampUpYears:       3,
	}

	assert.Equal(t, "2400", c.Enrollment(0).String())
	assert.True(t, num.Equalish(c.Enrollment(1), dec("2600"), dec("0.0001")),
		"enrollment %s", c.Enrollment(1))
	assert.True(t, num.Equalish(c.Enrollment(2), dec("2800"), dec("0.0001")),
		"enrollment %s", c.Enrollment(2))
	assert.Equal(t, "3000", c.Enrollment(3).String())
	// Holds flat at capacity after the ramp.
	assert.Equal(t, "3000", c.Enrollment(20).String())
}

func TestCurriculum_DisabledContributesNothing(t *testing.T) {
	c := CurriculumConfig{
		Enabled:  false,
		Capacity: dec("500"),
		BaseFee:  dec("20000"),
	}
	assert.True(t, c.Enrollment(5).IsZero())

	d := DynamicPeriodInput{Curricula: []CurriculumConfig{c}}
	assert.True(t, d.TuitionRevenue(5).IsZero())
}

func TestStaffCost_FixedPlusVariable(t *testing.T) {
	s := StaffCostConfig{
		FixedBase:           dec("12000000"),
		VariablePerStudent:  dec("4000"),
		EscalationRate:      dec("0.03"),
		EscalationFrequency: 1,
	}

	assert.Equal(t, "22000000", s.Cost(0, dec("2500")).String())
	// Both components escalate together.
	want := dec("22000000").Mul(dec("1.03"))
	assert.True(t, s.Cost(1, dec("2500")).Equal(want))
}

func TestDeriveRatios(t *testing.T) {
	last := HistoricalPeriodInput{
		Year: 2024,
		ProfitLoss: ProfitLoss{
			TuitionRevenue: dec("40000000"),
			OtherRevenue:   dec("2000000"),
			RentExpense:    dec("8000000"),
			StaffCost:      dec("20000000"),
			OtherOpex:      dec("7000000"),
		},
		BalanceSheet: BalanceSheet{
			Receivables:     dec("4200000"),
			Prepaid:         dec("1400000"),
			Payables:        dec("3500000"),
			Accrued:         dec("2100000"),
			DeferredRevenue: dec("6300000"),
		},
	}

	r := DeriveRatios(last)
	assert.Equal(t, "0.1", r.ReceivablesToRevenue.String())
	assert.Equal(t, "0.15", r.DeferredToRevenue.String())
	assert.Equal(t, "0.04", r.PrepaidToOpex.String())
	assert.Equal(t, "0.1", r.PayablesToOpex.String())
	assert.Equal(t, "0.06", r.AccruedToOpex.String())
	assert.Equal(t, "0.05", r.OtherRevenueToTuition.String())
	assert.False(t, r.IsZero())
}

func TestDeriveRatios_ZeroBaseline(t *testing.T) {
	r := DeriveRatios(HistoricalPeriodInput{})
	assert.True(t, r.IsZero())
}

func TestWorkingCapitalRatios_IsZero(t *testing.T) {
	var r WorkingCapitalRatios
	assert.True(t, r.IsZero())
	r.StaffToRevenue = dec("0.4")
	assert.False(t, r.IsZero())
}

package engine_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helalifaker/Project-2052-sub001/internal/config"
	"github.com/helalifaker/Project-2052-sub001/internal/engine"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
)

func benchInput() engine.Input {
	return config.Default("bench").Input
}

func TestRun_PeriodCountAndHorizon(t *testing.T) {
	out, err := engine.Run(benchInput())
	require.NoError(t, err)

	// 2 actual + 3 bridging + 25 modeled.
	require.Len(t, out.Periods, 30)
	assert.Equal(t, 2023, out.Periods[0].Year)
	assert.Equal(t, 2052, out.Periods[29].Year)

	assert.Equal(t, model.PeriodActual, out.Periods[0].Type)
	assert.Equal(t, model.PeriodActual, out.Periods[1].Type)
	assert.Equal(t, model.PeriodBridging, out.Periods[2].Type)
	assert.Equal(t, model.PeriodBridging, out.Periods[4].Type)
	assert.Equal(t, model.PeriodModeled, out.Periods[5].Type)
	assert.Equal(t, 2028, out.Periods[5].Year)

	assert.Equal(t, 30, out.Performance.PeriodCount)
	assert.Greater(t, out.Performance.TotalIterations, 0)
}

func TestRun_ContractExtensionAddsYears(t *testing.T) {
	base := benchInput()
	out25, err := engine.Run(base)
	require.NoError(t, err)

	extended := benchInput()
	extended.ContractYears = 30
	out30, err := engine.Run(extended)
	require.NoError(t, err)

	require.Len(t, out30.Periods, 35)
	assert.Equal(t, 2057, out30.Periods[34].Year)

	// A longer contract accumulates strictly more rent and operating profit.
	assert.True(t, out30.Metrics.CumulativeRent.GreaterThan(out25.Metrics.CumulativeRent),
		"rent 30y %s vs 25y %s", out30.Metrics.CumulativeRent, out25.Metrics.CumulativeRent)
	assert.True(t, out30.Metrics.CumulativeEBITDA.GreaterThan(out25.Metrics.CumulativeEBITDA))
}

func TestRun_AllPeriodsBalancedAndReconciled(t *testing.T) {
	out, err := engine.Run(benchInput())
	require.NoError(t, err)

	assert.True(t, out.Validation.AllPeriodsBalanced,
		"max balance difference %s", out.Validation.MaxBalanceDifference)
	assert.True(t, out.Validation.AllCashFlowsReconciled,
		"max cash difference %s", out.Validation.MaxCashDifference)
	assert.Empty(t, out.Validation.Issues)

	for _, p := range out.Periods {
		assert.True(t, p.Converged, "year %d", p.Year)
	}
}

func TestRun_Deterministic(t *testing.T) {
	first, err := engine.Run(benchInput())
	require.NoError(t, err)
	second, err := engine.Run(benchInput())
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first.Periods, second.Periods))
	assert.True(t, reflect.DeepEqual(first.Metrics, second.Metrics))
}

func TestRun_EquityLinksThroughNetIncome(t *testing.T) {
	out, err := engine.Run(benchInput())
	require.NoError(t, err)

	for i := 1; i < len(out.Periods); i++ {
		p := out.Periods[i]
		if p.Type == model.PeriodActual {
			continue
		}
		want := out.Periods[i-1].BalanceSheet.Equity.Add(p.ProfitLoss.NetIncome)
		assert.True(t, p.BalanceSheet.Equity.Equal(want),
			"year %d: equity %s, want %s", p.Year, p.BalanceSheet.Equity, want)
	}
}

func TestRun_RentNonDecreasing(t *testing.T) {
	out, err := engine.Run(benchInput())
	require.NoError(t, err)

	var prev decimal.Decimal
	for _, p := range out.Periods {
		if p.Type == model.PeriodActual {
			continue
		}
		assert.True(t, p.ProfitLoss.RentExpense.GreaterThanOrEqual(prev),
			"year %d: rent %s dropped below %s", p.Year, p.ProfitLoss.RentExpense, prev)
		prev = p.ProfitLoss.RentExpense
	}
}

func TestRun_MetricsPresent(t *testing.T) {
	out, err := engine.Run(benchInput())
	require.NoError(t, err)

	// Discount rate is configured, so NPV must be present.
	require.NotNil(t, out.Metrics.NPV)
	assert.True(t, out.Metrics.FinalCash.Equal(out.Periods[29].BalanceSheet.Cash))
	// Opening debt was 11M in the first actual year; peak can only be higher.
	assert.True(t, out.Metrics.PeakDebt.GreaterThanOrEqual(decimal.NewFromInt(11000000)))
}

func TestRun_RejectsBadInput(t *testing.T) {
	in := benchInput()
	in.ContractYears = 0
	_, err := engine.Run(in)
	assert.Error(t, err)

	in = benchInput()
	in.Historical = nil
	_, err = engine.Run(in)
	assert.Error(t, err)

	in = benchInput()
	in.Rent.FixedEscalation = nil
	_, err = engine.Run(in)
	assert.Error(t, err)
}

func TestValidate_FlagsBrokenPeriods(t *testing.T) {
	balanced := model.FinancialPeriod{
		Year: 2030,
		Type: model.PeriodModeled,
		BalanceSheet: model.BalanceSheet{
			TotalAssets: decimal.NewFromInt(100),
			Equity:      decimal.NewFromInt(100),
			Cash:        decimal.NewFromInt(100),
		},
		CashFlow: model.CashFlow{
			BeginningCash: decimal.NewFromInt(100),
			EndingCash:    decimal.NewFromInt(100),
		},
	}

	broken := model.FinancialPeriod{
		Year: 2031,
		Type: model.PeriodModeled,
		BalanceSheet: model.BalanceSheet{
			TotalAssets: decimal.NewFromInt(150),
			Equity:      decimal.NewFromInt(100),
		},
		CashFlow: model.CashFlow{
			// Beginning does not link to the prior ending cash, and the net
			// change does not explain the ending balance.
			BeginningCash: decimal.NewFromInt(90),
			NetChange:     decimal.NewFromInt(5),
			EndingCash:    decimal.NewFromInt(200),
		},
	}

	r := engine.Validate([]model.FinancialPeriod{balanced, broken})
	assert.False(t, r.AllPeriodsBalanced)
	assert.False(t, r.AllCashFlowsReconciled)
	assert.Equal(t, "50", r.MaxBalanceDifference.String())
	require.Len(t, r.Issues, 3)
	years := map[int]bool{}
	for _, issue := range r.Issues {
		years[issue.Year] = true
		assert.NotEmpty(t, issue.Description)
	}
	assert.True(t, years[2031])
	assert.False(t, years[2030])
}

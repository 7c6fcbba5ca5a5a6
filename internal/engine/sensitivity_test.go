package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helalifaker/Project-2052-sub001/internal/engine"
)

func TestSweep_TuitionFeeMovesNetIncome(t *testing.T) {
	res, err := engine.Sweep(benchInput(), engine.SweepSpec{
		Variable: engine.VarTuitionFee,
		Metric:   engine.MetricTotalNetIncome,
		Range:    decimal.RequireFromString("0.10"),
		Points:   3,
	})
	require.NoError(t, err)

	require.Len(t, res.Points, 3)
	assert.Equal(t, "-0.1", res.Points[0].Offset.String())
	assert.True(t, res.Points[1].Offset.IsZero())
	assert.Equal(t, "0.1", res.Points[2].Offset.String())

	// Higher fees, higher lifetime earnings.
	assert.True(t, res.Points[2].Value.GreaterThan(res.Points[0].Value))
	assert.True(t, res.Impact.IsPositive())
	assert.True(t, res.Impact.Equal(res.Points[2].Value.Sub(res.Points[0].Value)))
}

func TestSweep_BaselineUntouched(t *testing.T) {
	in := benchInput()
	baseFee := in.Dynamic.Curricula[0].BaseFee

	_, err := engine.Sweep(in, engine.SweepSpec{
		Variable: engine.VarEnrollment,
		Metric:   engine.MetricFinalCash,
		Range:    decimal.RequireFromString("0.20"),
		Points:   3,
	})
	require.NoError(t, err)
	assert.True(t, in.Dynamic.Curricula[0].BaseFee.Equal(baseFee))
	assert.True(t, in.Dynamic.Curricula[0].Capacity.Equal(decimal.NewFromInt(3000)))
}

func TestSweep_RejectsBadSpec(t *testing.T) {
	_, err := engine.Sweep(benchInput(), engine.SweepSpec{
		Variable: engine.VarTuitionFee,
		Metric:   engine.MetricTotalNetIncome,
		Range:    decimal.RequireFromString("0.10"),
		Points:   1,
	})
	assert.Error(t, err)

	_, err = engine.Sweep(benchInput(), engine.SweepSpec{
		Variable: engine.VarTuitionFee,
		Metric:   engine.MetricTotalNetIncome,
		Range:    decimal.Zero,
		Points:   3,
	})
	assert.Error(t, err)

	_, err = engine.Sweep(benchInput(), engine.SweepSpec{
		Variable: engine.Variable("head_count"),
		Metric:   engine.MetricTotalNetIncome,
		Range:    decimal.RequireFromString("0.10"),
		Points:   3,
	})
	assert.Error(t, err)
}

func TestSweepAll_RanksByImpact(t *testing.T) {
	results, err := engine.SweepAll(benchInput(),
		[]engine.Variable{engine.VarZakatRate, engine.VarTuitionFee, engine.VarStaffCost},
		engine.MetricTotalNetIncome,
		decimal.RequireFromString("0.10"), 3)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.True(t, results[i-1].Impact.GreaterThanOrEqual(results[i].Impact),
			"%s before %s", results[i-1].Variable, results[i].Variable)
	}
	// Tuition swings revenue itself; zakat only shaves a small slice of EBT.
	assert.Equal(t, engine.VarTuitionFee, results[0].Variable)
}

func TestSweep_NPVRequiresDiscountRate(t *testing.T) {
	in := benchInput()
	in.System.DiscountRate = decimal.Zero

	_, err := engine.Sweep(in, engine.SweepSpec{
		Variable: engine.VarTuitionFee,
		Metric:   engine.MetricNPV,
		Range:    decimal.RequireFromString("0.10"),
		Points:   2,
	})
	assert.Error(t, err)
}

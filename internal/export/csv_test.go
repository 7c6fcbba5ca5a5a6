package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helalifaker/Project-2052-sub001/internal/model"
)

func samplePeriod() model.FinancialPeriod {
	pl := model.ProfitLoss{
		TuitionRevenue: decimal.RequireFromString("20000000"),
		OtherRevenue:   decimal.RequireFromString("1000000"),
		RentExpense:    decimal.RequireFromString("2000000"),
		StaffCost:      decimal.RequireFromString("8000000"),
		Depreciation:   decimal.RequireFromString("1000000"),
	}
	pl.RecomputeTotals()
	return model.FinancialPeriod{
		Year:       2030,
		Type:       model.PeriodModeled,
		ProfitLoss: pl,
		BalanceSheet: model.BalanceSheet{
			Cash: decimal.RequireFromString("5000000.5"),
		},
		IterationsRequired: 4,
		Converged:          true,
	}
}

func TestHeaderMatchesRowWidth(t *testing.T) {
	fields := strings.Split(Header, ",")
	assert.Len(t, fields, numFields)
	assert.Len(t, MarshalPeriod(samplePeriod()), numFields)
}

func TestMarshalPeriod_FixedPointAmounts(t *testing.T) {
	row := MarshalPeriod(samplePeriod())

	assert.Equal(t, "2030", row[0])
	assert.Equal(t, "modeled", row[1])
	assert.Equal(t, "20000000.00", row[2])
	assert.Equal(t, "21000000.00", row[5])
	assert.Equal(t, "11000000.00", row[9]) // ebitda
	assert.Equal(t, "5000000.50", row[16])
	assert.Equal(t, "4", row[30])
	assert.Equal(t, "true", row[31])
}

func TestWritePeriods_RoundTripsThroughCSVReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, []model.FinancialPeriod{samplePeriod(), samplePeriod()}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "year", records[0][0])
	assert.Equal(t, "converged", records[0][numFields-1])
	for _, rec := range records[1:] {
		assert.Len(t, rec, numFields)
	}
}

func TestWritePeriods_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

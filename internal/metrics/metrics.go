// Package metrics post-processes a period series into summary figures:
// totals and averages, NPV at a supplied discount rate, IRR by root-finding
// and a linearly interpolated payback period.
package metrics

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// ErrNoSignChange is returned when the cash-flow series never changes sign,
// so no internal rate of return exists.
var ErrNoSignChange = errors.New("metrics: cash flow series has no sign change, IRR undefined")

// Summary aggregates a full period series.
type Summary struct {
	TotalNetIncome   decimal.Decimal `json:"totalNetIncome"`
	AverageROE       decimal.Decimal `json:"averageROE"`
	PeakDebt         decimal.Decimal `json:"peakDebt"`
	FinalCash        decimal.Decimal `json:"finalCash"`
	CumulativeRent   decimal.Decimal `json:"cumulativeRent"`
	CumulativeEBITDA decimal.Decimal `json:"cumulativeEBITDA"`

	NPV     *decimal.Decimal `json:"npv,omitempty"`
	IRR     *decimal.Decimal `json:"irr,omitempty"`
	Payback *decimal.Decimal `json:"paybackYears,omitempty"`
}

// Summarize computes summary metrics over the period series. NPV, IRR and
// payback are computed over the net change in cash of each period; NPV only
// when a discount rate is supplied.
func Summarize(periods []model.FinancialPeriod, discountRate decimal.Decimal) Summary {
	var s Summary
	if len(periods) == 0 {
		return s
	}

	roeSum := decimal.Zero
	roeCount := 0
	flows := make([]decimal.Decimal, 0, len(periods))
	for _, p := range periods {
		s.TotalNetIncome = s.TotalNetIncome.Add(p.ProfitLoss.NetIncome)
		s.CumulativeRent = s.CumulativeRent.Add(p.ProfitLoss.RentExpense)
		s.CumulativeEBITDA = s.CumulativeEBITDA.Add(p.ProfitLoss.EBITDA)
		s.PeakDebt = num.Max(s.PeakDebt, p.BalanceSheet.Debt)
		if !p.BalanceSheet.Equity.IsZero() {
			roeSum = roeSum.Add(p.ProfitLoss.NetIncome.Div(p.BalanceSheet.Equity))
			roeCount++
		}
		flows = append(flows, p.CashFlow.NetChange)
	}
	s.FinalCash = periods[len(periods)-1].BalanceSheet.Cash
	if roeCount > 0 {
		s.AverageROE = roeSum.Div(decimal.NewFromInt(int64(roeCount)))
	}

	if !discountRate.IsZero() {
		npv := NPV(flows, discountRate)
		s.NPV = &npv
	}
	if irr, err := IRR(flows); err == nil {
		s.IRR = &irr
	}
	if payback, ok := Payback(flows); ok {
		s.Payback = &payback
	}
	return s
}

// NPV discounts the series at the supplied rate, the first flow one period
// out: sum CF_t / (1+r)^t for t = 1..n.
func NPV(flows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, cf := range flows {
		total = total.Add(num.Discount(cf, rate, i+1))
	}
	return total
}

// irr search bounds and tuning. Bisection is slow but unconditionally stable
// with decimals.
var (
	irrLow       = decimal.RequireFromString("-0.99")
	irrHigh      = decimal.NewFromInt(10)
	irrTolerance = decimal.RequireFromString("0.0000001")
	two          = decimal.NewFromInt(2)
)

// IRR finds the rate at which NPV of the series is zero, by bisection over
// (-99%, 1000%).
func IRR(flows []decimal.Decimal) (decimal.Decimal, error) {
	lo, hi := irrLow, irrHigh
	fLo := NPV(flows, lo)
	fHi := NPV(flows, hi)
	if fLo.Sign() == fHi.Sign() {
		return decimal.Zero, ErrNoSignChange
	}
	for i := 0; i < 200; i++ {
		mid := lo.Add(hi).Div(two)
		if hi.Sub(lo).LessThan(irrTolerance) {
			return mid, nil
		}
		fMid := NPV(flows, mid)
		if fMid.IsZero() {
			return mid, nil
		}
		if fMid.Sign() == fLo.Sign() {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return lo.Add(hi).Div(two), nil
}

// Payback returns the first point, in years from the start of the series,
// at which cumulative cash flow crosses zero, linearly interpolated within
// the crossing year. The second return is false when the series never
// recovers.
func Payback(flows []decimal.Decimal) (decimal.Decimal, bool) {
	cum := decimal.Zero
	for i, cf := range flows {
		prev := cum
		cum = cum.Add(cf)
		if prev.IsNegative() && !cum.IsNegative() {
			fraction := num.SafeDiv(prev.Neg(), cf)
			return decimal.NewFromInt(int64(i)).Add(fraction), true
		}
	}
	return decimal.Zero, false
}

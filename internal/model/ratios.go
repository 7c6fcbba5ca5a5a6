package model

import (
	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// WorkingCapitalRatios are proportionality constants derived once from the
// last Actual period and locked for the remainder of the run. Bridging and
// Modeled calculators project working-capital balances and opex from them.
type WorkingCapitalRatios struct {
	ReceivablesToRevenue decimal.Decimal `json:"receivablesToRevenue" yaml:"receivables_to_revenue"`
	DeferredToRevenue    decimal.Decimal `json:"deferredToRevenue" yaml:"deferred_to_revenue"`
	PrepaidToOpex        decimal.Decimal `json:"prepaidToOpex" yaml:"prepaid_to_opex"`
	PayablesToOpex       decimal.Decimal `json:"payablesToOpex" yaml:"payables_to_opex"`
	AccruedToOpex        decimal.Decimal `json:"accruedToOpex" yaml:"accrued_to_opex"`

	// OtherRevenueToTuition fixes other revenue as a share of tuition from
	// the Actual baseline; it never compounds independently and never drifts.
	OtherRevenueToTuition decimal.Decimal `json:"otherRevenueToTuition" yaml:"other_revenue_to_tuition"`

	StaffToRevenue     decimal.Decimal `json:"staffToRevenue" yaml:"staff_to_revenue"`
	OtherOpexToRevenue decimal.Decimal `json:"otherOpexToRevenue" yaml:"other_opex_to_revenue"`
}

// IsZero reports whether no ratio has been supplied.
func (r WorkingCapitalRatios) IsZero() bool {
	return r.ReceivablesToRevenue.IsZero() && r.DeferredToRevenue.IsZero() &&
		r.PrepaidToOpex.IsZero() && r.PayablesToOpex.IsZero() && r.AccruedToOpex.IsZero() &&
		r.OtherRevenueToTuition.IsZero() && r.StaffToRevenue.IsZero() && r.OtherOpexToRevenue.IsZero()
}

// DeriveRatios computes locked working-capital ratios from the last Actual
// period's figures.
func DeriveRatios(last HistoricalPeriodInput) WorkingCapitalRatios {
	pl := last.ProfitLoss
	bs := last.BalanceSheet
	revenue := num.Sum(pl.TuitionRevenue, pl.OtherRevenue)
	opex := num.Sum(pl.RentExpense, pl.StaffCost, pl.OtherOpex)
	return WorkingCapitalRatios{
		ReceivablesToRevenue:  num.SafeDiv(bs.Receivables, revenue),
		DeferredToRevenue:     num.SafeDiv(bs.DeferredRevenue, revenue),
		PrepaidToOpex:         num.SafeDiv(bs.Prepaid, opex),
		PayablesToOpex:        num.SafeDiv(bs.Payables, opex),
		AccruedToOpex:         num.SafeDiv(bs.Accrued, opex),
		OtherRevenueToTuition: num.SafeDiv(pl.OtherRevenue, pl.TuitionRevenue),
		StaffToRevenue:        num.SafeDiv(pl.StaffCost, revenue),
		OtherOpexToRevenue:    num.SafeDiv(pl.OtherOpex, revenue),
	}
}

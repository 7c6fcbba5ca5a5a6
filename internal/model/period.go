package model

import (
	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// PeriodType classifies how a fiscal year was produced.
type PeriodType string

const (
	PeriodActual   PeriodType = "actual"
	PeriodBridging PeriodType = "bridging"
	PeriodModeled  PeriodType = "modeled"
)

// ProfitLoss holds one fiscal year's income statement.
type ProfitLoss struct {
	TuitionRevenue decimal.Decimal `json:"tuitionRevenue" yaml:"tuition_revenue"`
	OtherRevenue   decimal.Decimal `json:"otherRevenue" yaml:"other_revenue"`
	InterestIncome decimal.Decimal `json:"interestIncome" yaml:"interest_income"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue" yaml:"-"`

	RentExpense decimal.Decimal `json:"rentExpense" yaml:"rent_expense"`
	StaffCost   decimal.Decimal `json:"staffCost" yaml:"staff_cost"`
	OtherOpex   decimal.Decimal `json:"otherOpex" yaml:"other_opex"`
	TotalOpex   decimal.Decimal `json:"totalOpex" yaml:"-"`

	EBITDA          decimal.Decimal `json:"ebitda" yaml:"-"`
	Depreciation    decimal.Decimal `json:"depreciation" yaml:"depreciation"`
	EBIT            decimal.Decimal `json:"ebit" yaml:"-"`
	InterestExpense decimal.Decimal `json:"interestExpense" yaml:"interest_expense"`
	EBT             decimal.Decimal `json:"ebt" yaml:"-"`
	Zakat           decimal.Decimal `json:"zakat" yaml:"zakat"`
	NetIncome       decimal.Decimal `json:"netIncome" yaml:"-"`
}

// BalanceSheet holds one fiscal year's ending balances.
type BalanceSheet struct {
	Cash        decimal.Decimal `json:"cash" yaml:"cash"`
	Receivables decimal.Decimal `json:"receivables" yaml:"receivables"`
	Prepaid     decimal.Decimal `json:"prepaid" yaml:"prepaid"`

	GrossPPE                decimal.Decimal `json:"grossPPE" yaml:"gross_ppe"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation" yaml:"accumulated_depreciation"`
	NetPPE                  decimal.Decimal `json:"netPPE" yaml:"-"`

	TotalAssets decimal.Decimal `json:"totalAssets" yaml:"-"`

	Payables        decimal.Decimal `json:"payables" yaml:"payables"`
	Accrued         decimal.Decimal `json:"accrued" yaml:"accrued"`
	DeferredRevenue decimal.Decimal `json:"deferredRevenue" yaml:"deferred_revenue"`
	Debt            decimal.Decimal `json:"debt" yaml:"debt"`

	TotalLiabilities decimal.Decimal `json:"totalLiabilities" yaml:"-"`
	Equity           decimal.Decimal `json:"equity" yaml:"equity"`

	// BalanceDifference is assets - liabilities - equity. A non-zero value
	// beyond tolerance indicates a modeling bug and is reported, never
	// patched.
	BalanceDifference decimal.Decimal `json:"balanceDifference" yaml:"-"`
}

// CashFlow holds the indirect-method cash flow statement for one year.
type CashFlow struct {
	Operating decimal.Decimal `json:"operating"`
	Investing decimal.Decimal `json:"investing"`
	Financing decimal.Decimal `json:"financing"`
	NetChange decimal.Decimal `json:"netChange"`

	BeginningCash decimal.Decimal `json:"beginningCash"`
	EndingCash    decimal.Decimal `json:"endingCash"`

	// ReconciliationDifference is beginningCash + netChange - endingCash.
	ReconciliationDifference decimal.Decimal `json:"reconciliationDifference"`
}

// FinancialPeriod is the canonical output unit for one fiscal year.
type FinancialPeriod struct {
	Year int        `json:"year"`
	Type PeriodType `json:"periodType"`

	ProfitLoss   ProfitLoss   `json:"profitLoss"`
	BalanceSheet BalanceSheet `json:"balanceSheet"`
	CashFlow     CashFlow     `json:"cashFlow"`

	IterationsRequired   int  `json:"iterationsRequired"`
	Converged            bool `json:"converged"`
	BalanceSheetBalanced bool `json:"balanceSheetBalanced"`
	CashFlowReconciled   bool `json:"cashFlowReconciled"`
}

// Tolerance returns the balance/cash reconciliation tolerance applicable to
// this period. Bridging periods run a simplified single-pass plug, so their
// tolerance is relaxed.
func (p FinancialPeriod) Tolerance() decimal.Decimal {
	if p.Type == PeriodBridging {
		return num.BridgingTolerance
	}
	return num.BalanceSheetTolerance
}

// RecomputeTotals fills the derived profit-and-loss fields from their
// components.
func (pl *ProfitLoss) RecomputeTotals() {
	pl.TotalRevenue = num.Sum(pl.TuitionRevenue, pl.OtherRevenue)
	pl.TotalOpex = num.Sum(pl.RentExpense, pl.StaffCost, pl.OtherOpex)
	pl.EBITDA = pl.TotalRevenue.Sub(pl.TotalOpex)
	pl.EBIT = pl.EBITDA.Sub(pl.Depreciation)
	pl.EBT = pl.EBIT.Sub(pl.InterestExpense).Add(pl.InterestIncome)
	pl.NetIncome = pl.EBT.Sub(pl.Zakat)
}

// RecomputeTotals fills totals and the balance difference from components.
func (bs *BalanceSheet) RecomputeTotals() {
	bs.NetPPE = bs.GrossPPE.Sub(bs.AccumulatedDepreciation)
	bs.TotalAssets = num.Sum(bs.Cash, bs.Receivables, bs.Prepaid, bs.NetPPE)
	bs.TotalLiabilities = num.Sum(bs.Payables, bs.Accrued, bs.DeferredRevenue, bs.Debt)
	bs.BalanceDifference = bs.TotalAssets.Sub(bs.TotalLiabilities).Sub(bs.Equity)
}

// Recompute fills net change and the reconciliation difference.
func (cf *CashFlow) Recompute() {
	cf.NetChange = num.Sum(cf.Operating, cf.Investing, cf.Financing)
	cf.ReconciliationDifference = cf.BeginningCash.Add(cf.NetChange).Sub(cf.EndingCash)
}

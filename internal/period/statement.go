package period

import (
	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/capex"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// parts collects everything a projected period needs before its balance
// sheet and cash flow can be assembled. Debt is already settled here; the
// plug is verified, never corrected.
type parts struct {
	pl model.ProfitLoss

	receivables decimal.Decimal
	prepaid     decimal.Decimal
	payables    decimal.Decimal
	accrued     decimal.Decimal
	deferred    decimal.Decimal

	capex capex.Result

	debt       decimal.Decimal
	issuedDebt decimal.Decimal
	equity     decimal.Decimal
	endingCash decimal.Decimal

	iterations int
	converged  bool
}

// assemble builds a complete FinancialPeriod from settled parts. The cash
// flow is built by the indirect method: net income, plus depreciation, plus
// working-capital movements (receivables and prepaid are sources when they
// decrease; payables, accrued and deferred when they increase), less CapEx,
// plus net debt issuance.
func assemble(year int, ptype model.PeriodType, prev *model.FinancialPeriod, p parts) model.FinancialPeriod {
	p.pl.RecomputeTotals()

	var prevBS model.BalanceSheet
	if prev != nil {
		prevBS = prev.BalanceSheet
	}

	bs := model.BalanceSheet{
		Cash:                    p.endingCash,
		Receivables:             p.receivables,
		Prepaid:                 p.prepaid,
		GrossPPE:                p.capex.GrossPPE,
		AccumulatedDepreciation: p.capex.AccumulatedDepreciation,
		Payables:                p.payables,
		Accrued:                 p.accrued,
		DeferredRevenue:         p.deferred,
		Debt:                    p.debt,
		Equity:                  p.equity,
	}
	bs.RecomputeTotals()

	operating := num.Sum(
		p.pl.NetIncome,
		p.pl.Depreciation,
		prevBS.Receivables.Sub(p.receivables),
		prevBS.Prepaid.Sub(p.prepaid),
		p.payables.Sub(prevBS.Payables),
		p.accrued.Sub(prevBS.Accrued),
		p.deferred.Sub(prevBS.DeferredRevenue),
	)

	cf := model.CashFlow{
		Operating:     operating,
		Investing:     p.capex.Additions.Neg(),
		Financing:     p.issuedDebt,
		BeginningCash: prevBS.Cash,
		EndingCash:    p.endingCash,
	}
	cf.Recompute()

	fp := model.FinancialPeriod{
		Year:               year,
		Type:               ptype,
		ProfitLoss:         p.pl,
		BalanceSheet:       bs,
		CashFlow:           cf,
		IterationsRequired: p.iterations,
		Converged:          p.converged,
	}
	tol := fp.Tolerance()
	fp.BalanceSheetBalanced = bs.BalanceDifference.Abs().LessThan(tol)
	fp.CashFlowReconciled = cf.ReconciliationDifference.Abs().LessThan(tol)
	return fp
}

package period

import (
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// Actual maps externally supplied historical figures 1:1 into a
// FinancialPeriod. No projection arithmetic happens here; balance and cash
// reconciliation differences are recorded for the validation report but
// external data is never rejected over them.
func (c *Calculator) Actual(in model.HistoricalPeriodInput, prev *model.FinancialPeriod) model.FinancialPeriod {
	pl := in.ProfitLoss
	pl.RecomputeTotals()

	bs := in.BalanceSheet
	bs.RecomputeTotals()

	// Reconstruct the cash flow indirectly from balance-sheet deltas. With
	// no prior period there is nothing to delta against, so the statement
	// degenerates to beginning == ending.
	var cf model.CashFlow
	if prev == nil {
		cf = model.CashFlow{BeginningCash: bs.Cash, EndingCash: bs.Cash}
	} else {
		prevBS := prev.BalanceSheet
		operating := num.Sum(
			pl.NetIncome,
			pl.Depreciation,
			prevBS.Receivables.Sub(bs.Receivables),
			prevBS.Prepaid.Sub(bs.Prepaid),
			bs.Payables.Sub(prevBS.Payables),
			bs.Accrued.Sub(prevBS.Accrued),
			bs.DeferredRevenue.Sub(prevBS.DeferredRevenue),
		)
		cf = model.CashFlow{
			Operating:     operating,
			Investing:     bs.GrossPPE.Sub(prevBS.GrossPPE).Neg(),
			Financing:     bs.Debt.Sub(prevBS.Debt).Add(bs.Equity.Sub(prevBS.Equity).Sub(pl.NetIncome)),
			BeginningCash: prevBS.Cash,
			EndingCash:    bs.Cash,
		}
	}
	cf.Recompute()

	fp := model.FinancialPeriod{
		Year:               in.Year,
		Type:               model.PeriodActual,
		ProfitLoss:         pl,
		BalanceSheet:       bs,
		CashFlow:           cf,
		IterationsRequired: 0,
		Converged:          true,
	}
	fp.BalanceSheetBalanced = bs.BalanceDifference.Abs().LessThan(num.BalanceSheetTolerance)
	fp.CashFlowReconciled = cf.ReconciliationDifference.Abs().LessThan(num.CashFlowTolerance)
	return fp
}

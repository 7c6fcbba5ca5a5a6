package period

import (
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// Bridging projects one transition year forward from the previous period
// using the locked ratios and a supplied tuition growth rate. It does not
// invoke the circular solver: interest is charged on the opening debt only
// and any cash shortfall is topped up with a single debt issuance whose
// interest is not fed back. That approximation is why bridging periods carry
// a relaxed reconciliation tolerance.
func (c *Calculator) Bridging(in model.TransitionPeriodInput, prev model.FinancialPeriod) model.FinancialPeriod {
	prevBS := prev.BalanceSheet

	// Tuition grows by the supplied rate; other revenue is tied to tuition
	// through the locked baseline ratio and never compounds on its own.
	tuition := prev.ProfitLoss.TuitionRevenue.Mul(num.One.Add(in.TuitionGrowthRate))
	other := tuition.Mul(c.Ratios.OtherRevenueToTuition)
	revenue := tuition.Add(other)

	cap := c.CapEx.Advance(in.Year)

	pl := model.ProfitLoss{
		TuitionRevenue:  tuition,
		OtherRevenue:    other,
		InterestIncome:  prevBS.Cash.Mul(c.System.DepositInterestRate),
		RentExpense:     c.Rent.Rent(in.Year, revenue),
		StaffCost:       revenue.Mul(c.Ratios.StaffToRevenue),
		OtherOpex:       revenue.Mul(c.Ratios.OtherOpexToRevenue),
		Depreciation:    cap.Depreciation,
		InterestExpense: prevBS.Debt.Mul(c.System.DebtInterestRate),
	}
	pl.RecomputeTotals()
	pl.Zakat = num.PositivePart(pl.EBT).Mul(c.System.ZakatRate)
	pl.RecomputeTotals()

	opex := pl.TotalOpex
	receivables := revenue.Mul(c.Ratios.ReceivablesToRevenue)
	deferred := revenue.Mul(c.Ratios.DeferredToRevenue)
	prepaid := opex.Mul(c.Ratios.PrepaidToOpex)
	payables := opex.Mul(c.Ratios.PayablesToOpex)
	accrued := opex.Mul(c.Ratios.AccruedToOpex)

	cashBeforeBorrowing := num.Sum(
		prevBS.Cash,
		pl.NetIncome,
		pl.Depreciation,
		prevBS.Receivables.Sub(receivables),
		prevBS.Prepaid.Sub(prepaid),
		payables.Sub(prevBS.Payables),
		accrued.Sub(prevBS.Accrued),
		deferred.Sub(prevBS.DeferredRevenue),
		cap.Additions.Neg(),
	)

	// Single-pass plug.
	issued := num.PositivePart(c.System.MinCashBalance.Sub(cashBeforeBorrowing))
	debt := prevBS.Debt.Add(issued)

	return assemble(in.Year, model.PeriodBridging, &prev, parts{
		pl:          pl,
		receivables: receivables,
		prepaid:     prepaid,
		payables:    payables,
		accrued:     accrued,
		deferred:    deferred,
		capex:       cap,
		debt:        debt,
		issuedDebt:  issued,
		equity:      prevBS.Equity.Add(pl.NetIncome),
		endingCash:  cashBeforeBorrowing.Add(issued),
		iterations:  1,
		converged:   true,
	})
}

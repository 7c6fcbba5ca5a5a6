package period

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
	"github.com/helalifaker/Project-2052-sub001/internal/solver"
)

// Modeled computes one fully-modeled year. Revenue builds up from enrollment
// and fees per curriculum, staff cost from the escalated fixed/variable
// split, rent from the configured model, depreciation from the CapEx engine.
// Interest, zakat, debt and ending cash are settled together by the circular
// solver; non-convergence is a hard error for the period.
func (c *Calculator) Modeled(dyn model.DynamicPeriodInput, year int, prev model.FinancialPeriod) (model.FinancialPeriod, error) {
	prevBS := prev.BalanceSheet
	offset := year - dyn.StartYear

	tuition := dyn.TuitionRevenue(offset)
	other := tuition.Mul(c.Ratios.OtherRevenueToTuition)
	revenue := tuition.Add(other)

	cap := c.CapEx.Advance(year)

	pl := model.ProfitLoss{
		TuitionRevenue: tuition,
		OtherRevenue:   other,
		InterestIncome: prevBS.Cash.Mul(c.System.DepositInterestRate),
		RentExpense:    c.Rent.Rent(year, revenue),
		StaffCost:      dyn.Staff.Cost(offset, dyn.TotalEnrollment(offset)),
		OtherOpex:      revenue.Mul(dyn.OtherOpexPercent),
		Depreciation:   cap.Depreciation,
	}
	pl.RecomputeTotals()

	receivables := revenue.Mul(c.Ratios.ReceivablesToRevenue)
	deferred := revenue.Mul(c.Ratios.DeferredToRevenue)
	prepaid := pl.TotalOpex.Mul(c.Ratios.PrepaidToOpex)
	payables := pl.TotalOpex.Mul(c.Ratios.PayablesToOpex)
	accrued := pl.TotalOpex.Mul(c.Ratios.AccruedToOpex)

	// Everything in the pre-borrowing cash projection is fixed except net
	// income, so it collapses to a constant plus net income.
	cashBase := num.Sum(
		prevBS.Cash,
		pl.Depreciation,
		prevBS.Receivables.Sub(receivables),
		prevBS.Prepaid.Sub(prepaid),
		payables.Sub(prevBS.Payables),
		accrued.Sub(prevBS.Accrued),
		deferred.Sub(prevBS.DeferredRevenue),
		cap.Additions.Neg(),
	)

	res, err := solver.Solve(solver.Problem{
		EBIT:           pl.EBIT,
		InterestIncome: pl.InterestIncome,
		ZakatRate:      c.System.ZakatRate,
		DebtRate:       c.System.DebtInterestRate,
		OpeningDebt:    prevBS.Debt,
		MinCash:        c.System.MinCashBalance,
		CashBeforeBorrowing: func(netIncome decimal.Decimal) decimal.Decimal {
			return cashBase.Add(netIncome)
		},
	}, c.Solver)
	if err != nil {
		return model.FinancialPeriod{}, fmt.Errorf("year %d: %w", year, err)
	}

	pl.InterestExpense = res.Interest
	pl.Zakat = res.Zakat
	pl.RecomputeTotals()

	return assemble(year, model.PeriodModeled, &prev, parts{
		pl:          pl,
		receivables: receivables,
		prepaid:     prepaid,
		payables:    payables,
		accrued:     accrued,
		deferred:    deferred,
		capex:       cap,
		debt:        res.Debt,
		issuedDebt:  res.IssuedDebt,
		equity:      prevBS.Equity.Add(res.NetIncome),
		endingCash:  res.EndingCash,
		iterations:  res.Iterations,
		converged:   res.Converged,
	}), nil
}

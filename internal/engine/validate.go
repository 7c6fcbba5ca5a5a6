package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// Issue describes a single reconciliation violation. Issues are data, not
// errors: a run with issues still returns its periods.
type Issue struct {
	Year        int             `json:"year"`
	Check       string          `json:"check"`
	Difference  decimal.Decimal `json:"difference"`
	Description string          `json:"description"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%d]: %s", i.Check, i.Year, i.Description)
}

const (
	checkBalance = "balance-sheet"
	checkCash    = "cash-flow"
	checkLinkage = "period-linkage"
)

// ValidationReport aggregates whole-run reconciliation results.
type ValidationReport struct {
	AllPeriodsBalanced     bool            `json:"allPeriodsBalanced"`
	AllCashFlowsReconciled bool            `json:"allCashFlowsReconciled"`
	MaxBalanceDifference   decimal.Decimal `json:"maxBalanceDifference"`
	MaxCashDifference      decimal.Decimal `json:"maxCashDifference"`
	Issues                 []Issue         `json:"issues,omitempty"`
}

// Validate recomputes the balance and reconciliation differences for every
// period and flags any exceeding tolerance. Actual periods are exempt from
// the cash-flow check (external data), and Bridging periods use the relaxed
// tolerance. Nothing here throws; the report is for the caller to inspect.
func Validate(periods []model.FinancialPeriod) ValidationReport {
	r := ValidationReport{AllPeriodsBalanced: true, AllCashFlowsReconciled: true}

	for i, p := range periods {
		tol := p.Tolerance()

		balDiff := p.BalanceSheet.TotalAssets.Sub(p.BalanceSheet.TotalLiabilities).Sub(p.BalanceSheet.Equity)
		r.MaxBalanceDifference = num.Max(r.MaxBalanceDifference, balDiff.Abs())
		if !balDiff.Abs().LessThan(tol) {
			r.AllPeriodsBalanced = false
			r.Issues = append(r.Issues, Issue{
				Year:        p.Year,
				Check:       checkBalance,
				Difference:  balDiff,
				Description: fmt.Sprintf("assets - liabilities - equity = %s exceeds tolerance %s", balDiff, tol),
			})
		}

		if p.Type != model.PeriodActual {
			cashDiff := p.CashFlow.BeginningCash.Add(p.CashFlow.NetChange).Sub(p.CashFlow.EndingCash)
			r.MaxCashDifference = num.Max(r.MaxCashDifference, cashDiff.Abs())
			if !cashDiff.Abs().LessThan(tol) {
				r.AllCashFlowsReconciled = false
				r.Issues = append(r.Issues, Issue{
					Year:        p.Year,
					Check:       checkCash,
					Difference:  cashDiff,
					Description: fmt.Sprintf("beginning + net change - ending = %s exceeds tolerance %s", cashDiff, tol),
				})
			}
		}

		// Each period's beginning cash must link to the prior ending cash.
		if i > 0 {
			linkDiff := p.CashFlow.BeginningCash.Sub(periods[i-1].BalanceSheet.Cash)
			if !linkDiff.Abs().LessThan(num.CashFlowTolerance) {
				r.AllCashFlowsReconciled = false
				r.Issues = append(r.Issues, Issue{
					Year:        p.Year,
					Check:       checkLinkage,
					Difference:  linkDiff,
					Description: fmt.Sprintf("beginning cash differs from prior ending cash by %s", linkDiff),
				})
			}
		}
	}
	return r
}

// Package export serializes a period series for the reporting boundary.
// Monetary values are written as fixed-point strings; binary floating point
// never crosses this boundary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/helalifaker/Project-2052-sub001/internal/model"
)

// Header is the CSV header for a period series export.
const Header = "year,period_type,tuition_revenue,other_revenue,interest_income,total_revenue," +
	"rent_expense,staff_cost,other_opex,ebitda,depreciation,ebit,interest_expense,ebt,zakat,net_income," +
	"cash,receivables,prepaid,net_ppe,total_assets,payables,accrued,deferred_revenue,debt,equity," +
	"operating_cf,investing_cf,financing_cf,ending_cash,iterations,converged"

const numFields = 32

// MarshalPeriod converts one FinancialPeriod to a CSV row. Amounts are
// rendered with two decimal places.
func MarshalPeriod(p model.FinancialPeriod) []string {
	pl := p.ProfitLoss
	bs := p.BalanceSheet
	cf := p.CashFlow
	return []string{
		strconv.Itoa(p.Year),
		string(p.Type),
		pl.TuitionRevenue.StringFixed(2),
		pl.OtherRevenue.StringFixed(2),
		pl.InterestIncome.StringFixed(2),
		pl.TotalRevenue.StringFixed(2),
		pl.RentExpense.StringFixed(2),
		pl.StaffCost.StringFixed(2),
		pl.OtherOpex.StringFixed(2),
		pl.EBITDA.StringFixed(2),
		pl.Depreciation.StringFixed(2),
		pl.EBIT.StringFixed(2),
		pl.InterestExpense.StringFixed(2),
		pl.EBT.StringFixed(2),
		pl.Zakat.StringFixed(2),
		pl.NetIncome.StringFixed(2),
		bs.Cash.StringFixed(2),
		bs.Receivables.StringFixed(2),
		bs.Prepaid.StringFixed(2),
		bs.NetPPE.StringFixed(2),
		bs.TotalAssets.StringFixed(2),
		bs.Payables.StringFixed(2),
		bs.Accrued.StringFixed(2),
		bs.DeferredRevenue.StringFixed(2),
		bs.Debt.StringFixed(2),
		bs.Equity.StringFixed(2),
		cf.Operating.StringFixed(2),
		cf.Investing.StringFixed(2),
		cf.Financing.StringFixed(2),
		cf.EndingCash.StringFixed(2),
		strconv.Itoa(p.IterationsRequired),
		strconv.FormatBool(p.Converged),
	}
}

// WritePeriods writes a period series as CSV, including the header.
func WritePeriods(w io.Writer, periods []model.FinancialPeriod) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range periods {
		row := MarshalPeriod(p)
		if len(row) != numFields {
			return fmt.Errorf("row %d: expected %d fields, got %d", i+2, numFields, len(row))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

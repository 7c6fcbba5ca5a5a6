// Package num is the arithmetic context shared by every calculation in the
// engine. All monetary values are shopspring decimals; helpers here keep
// tolerance checks, safe division and stepped compounding in one place so no
// component reaches for float64 or ambient decimal state.
package num

import "github.com/shopspring/decimal"

// Tolerances, in monetary units. Modeled periods must land inside the strict
// tolerances; Bridging periods use the relaxed one because their plug is a
// single pass rather than a full solve.
var (
	BalanceSheetTolerance   = decimal.RequireFromString("0.01")
	CashFlowTolerance       = decimal.RequireFromString("0.01")
	BridgingTolerance       = decimal.RequireFromString("1.00")
	DefaultSolverTolerance  = decimal.RequireFromString("0.01")
	DefaultRelaxationFactor = decimal.NewFromInt(1)
)

// One is the decimal constant 1.
var One = decimal.NewFromInt(1)

// Equalish reports whether a and b differ by less than tol.
func Equalish(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tol)
}

// SafeDiv divides a by b, returning zero when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Sum adds a series of decimals.
func Sum(vals ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(v)
	}
	return total
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// PositivePart returns v if positive, otherwise zero.
func PositivePart(v decimal.Decimal) decimal.Decimal {
	if v.IsPositive() {
		return v
	}
	return decimal.Zero
}

// CompoundStep escalates base by growth compounded once per frequency years:
// base * (1+growth)^floor(elapsed/frequency). Escalation is flat between
// steps. A frequency of zero disables escalation.
func CompoundStep(base, growth decimal.Decimal, elapsed, frequency int) decimal.Decimal {
	if frequency <= 0 || elapsed <= 0 || growth.IsZero() {
		return base
	}
	steps := elapsed / frequency
	if steps == 0 {
		return base
	}
	factor := One.Add(growth).Pow(decimal.NewFromInt(int64(steps)))
	return base.Mul(factor)
}

// Discount returns value / (1+rate)^periods.
func Discount(value, rate decimal.Decimal, periods int) decimal.Decimal {
	factor := One.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return SafeDiv(value, factor)
}

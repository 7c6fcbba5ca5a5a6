// Package solver resolves the circular dependency between interest, zakat,
// debt and ending cash by fixed-point iteration: interest depends on debt,
// debt is sized to cover any shortfall below the minimum cash balance, the
// shortfall depends on net income, and net income depends on interest and
// zakat.
//
// Each iteration is a pure Step(problem, state) -> state transition; Solve
// drives the iteration and checks the stopping predicate, so individual
// steps are unit-testable without the loop.
package solver

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// ErrNotConverged is returned when MaxIterations is exhausted without the
// interest and zakat residuals meeting tolerance. Callers must treat it as
// fatal for the period; an unconverged result is never usable downstream.
var ErrNotConverged = errors.New("solver did not converge")

// Config tunes the fixed-point iteration.
type Config struct {
	MaxIterations int `json:"maxIterations" yaml:"max_iterations"`
	// Tolerance is in monetary units.
	Tolerance decimal.Decimal `json:"tolerance" yaml:"tolerance"`
	// RelaxationFactor in (0,1]; 1 means no damping.
	RelaxationFactor decimal.Decimal `json:"relaxationFactor" yaml:"relaxation_factor"`
}

// Default returns the standard solver tuning.
func Default() Config {
	return Config{
		MaxIterations:    100,
		Tolerance:        num.DefaultSolverTolerance,
		RelaxationFactor: num.DefaultRelaxationFactor,
	}
}

// Validate rejects malformed solver configuration.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("solver: max iterations %d must be positive", c.MaxIterations)
	}
	if !c.Tolerance.IsPositive() {
		return fmt.Errorf("solver: tolerance %s must be positive", c.Tolerance)
	}
	if !c.RelaxationFactor.IsPositive() || c.RelaxationFactor.GreaterThan(num.One) {
		return fmt.Errorf("solver: relaxation factor %s must be in (0,1]", c.RelaxationFactor)
	}
	return nil
}

// Problem is the fixed data of one period's solve.
type Problem struct {
	EBIT           decimal.Decimal
	InterestIncome decimal.Decimal
	ZakatRate      decimal.Decimal
	DebtRate       decimal.Decimal

	// OpeningDebt is the prior period's ending debt; debt never drops below
	// it during the solve.
	OpeningDebt decimal.Decimal
	MinCash     decimal.Decimal

	// CashBeforeBorrowing projects the period's ending cash, excluding any
	// debt issued this period, as a function of net income.
	CashBeforeBorrowing func(netIncome decimal.Decimal) decimal.Decimal
}

// State is one iterate of the fixed point.
type State struct {
	Debt     decimal.Decimal
	Interest decimal.Decimal
	Zakat    decimal.Decimal

	// Residuals between the raw recomputed values and the previous iterate;
	// the stopping predicate tests them against tolerance.
	InterestResidual decimal.Decimal
	ZakatResidual    decimal.Decimal
}

// Step performs one fixed-point iteration with relaxation.
func Step(p Problem, s State, relaxation decimal.Decimal) State {
	ebt := p.EBIT.Sub(s.Interest).Add(p.InterestIncome)
	zakatRaw := num.PositivePart(ebt).Mul(p.ZakatRate)
	netIncome := ebt.Sub(zakatRaw)

	cash := p.CashBeforeBorrowing(netIncome)
	debt := s.Debt
	if cash.LessThan(p.MinCash) {
		// Debt is monotonic within a solve: only ever raised.
		debt = num.Max(debt, p.OpeningDebt.Add(p.MinCash.Sub(cash)))
	}

	interestRaw := debt.Mul(p.DebtRate)

	return State{
		Debt:             debt,
		Interest:         s.Interest.Add(relaxation.Mul(interestRaw.Sub(s.Interest))),
		Zakat:            s.Zakat.Add(relaxation.Mul(zakatRaw.Sub(s.Zakat))),
		InterestResidual: interestRaw.Sub(s.Interest).Abs(),
		ZakatResidual:    zakatRaw.Sub(s.Zakat).Abs(),
	}
}

// Result is the converged solution.
type Result struct {
	Debt       decimal.Decimal
	IssuedDebt decimal.Decimal
	Interest   decimal.Decimal
	Zakat      decimal.Decimal
	EBT        decimal.Decimal
	NetIncome  decimal.Decimal
	EndingCash decimal.Decimal
	Iterations int
	Converged  bool
}

// Solve iterates Step until both residuals are under tolerance or
// MaxIterations is exhausted. On convergence the returned figures are
// recomputed exactly from the settled debt level, so zakat equals
// max(0, EBT) x zakatRate to the last digit.
func Solve(p Problem, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	s := State{Debt: p.OpeningDebt}
	for i := 1; i <= cfg.MaxIterations; i++ {
		s = Step(p, s, cfg.RelaxationFactor)
		if s.InterestResidual.LessThan(cfg.Tolerance) && s.ZakatResidual.LessThan(cfg.Tolerance) {
			r := finalize(p, s.Debt)
			r.Iterations = i
			r.Converged = true
			return r, nil
		}
	}
	return Result{Iterations: cfg.MaxIterations}, fmt.Errorf("%w after %d iterations (interest residual %s, zakat residual %s)",
		ErrNotConverged, cfg.MaxIterations, s.InterestResidual, s.ZakatResidual)
}

// finalize recomputes the statement figures exactly from the settled debt.
func finalize(p Problem, debt decimal.Decimal) Result {
	interest := debt.Mul(p.DebtRate)
	ebt := p.EBIT.Sub(interest).Add(p.InterestIncome)
	zakat := num.PositivePart(ebt).Mul(p.ZakatRate)
	netIncome := ebt.Sub(zakat)
	issued := debt.Sub(p.OpeningDebt)
	return Result{
		Debt:       debt,
		IssuedDebt: issued,
		Interest:   interest,
		Zakat:      zakat,
		EBT:        ebt,
		NetIncome:  netIncome,
		EndingCash: p.CashBeforeBorrowing(netIncome).Add(issued),
	}
}

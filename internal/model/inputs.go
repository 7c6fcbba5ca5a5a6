package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// SystemConfiguration holds the process-wide tunables for one run. It is
// immutable for the duration of the run.
type SystemConfiguration struct {
	ZakatRate           decimal.Decimal `json:"zakatRate" yaml:"zakat_rate"`
	DebtInterestRate    decimal.Decimal `json:"debtInterestRate" yaml:"debt_interest_rate"`
	DepositInterestRate decimal.Decimal `json:"depositInterestRate" yaml:"deposit_interest_rate"`
	MinCashBalance      decimal.Decimal `json:"minCashBalance" yaml:"min_cash_balance"`
	// DiscountRate is optional; when zero, NPV/IRR are omitted from metrics.
	DiscountRate decimal.Decimal `json:"discountRate" yaml:"discount_rate"`
}

// Validate rejects malformed system configuration.
func (c SystemConfiguration) Validate() error {
	if c.ZakatRate.IsNegative() {
		return fmt.Errorf("system: zakat rate %s is negative", c.ZakatRate)
	}
	if c.DebtInterestRate.IsNegative() {
		return fmt.Errorf("system: debt interest rate %s is negative", c.DebtInterestRate)
	}
	if c.DepositInterestRate.IsNegative() {
		return fmt.Errorf("system: deposit interest rate %s is negative", c.DepositInterestRate)
	}
	if c.MinCashBalance.IsNegative() {
		return fmt.Errorf("system: minimum cash balance %s is negative", c.MinCashBalance)
	}
	return nil
}

// HistoricalPeriodInput carries externally sourced figures for one Actual
// fiscal year. The figures are mapped 1:1 into a FinancialPeriod; the engine
// performs no projection arithmetic on them.
type HistoricalPeriodInput struct {
	Year         int          `json:"year" yaml:"year"`
	Immutable    bool         `json:"immutable" yaml:"immutable"`
	ProfitLoss   ProfitLoss   `json:"profitLoss" yaml:"profit_loss"`
	BalanceSheet BalanceSheet `json:"balanceSheet" yaml:"balance_sheet"`
}

// TransitionPeriodInput carries the growth assumption for one Bridging year.
type TransitionPeriodInput struct {
	Year              int             `json:"year" yaml:"year"`
	TuitionGrowthRate decimal.Decimal `json:"tuitionGrowthRate" yaml:"tuition_growth_rate"`
}

// CurriculumConfig describes one curriculum stream priced and enrolled
// independently. A disabled curriculum contributes zero revenue.
type CurriculumConfig struct {
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`

	Capacity          decimal.Decimal `json:"capacity" yaml:"capacity"`
	InitialEnrollment decimal.Decimal `json:"initialEnrollment" yaml:"initial_enrollment"`
	RampUpYears       int             `json:"rampUpYears" yaml:"ramp_up_years"`

	BaseFee      decimal.Decimal `json:"baseFee" yaml:"base_fee"`
	FeeGrowth    decimal.Decimal `json:"feeGrowth" yaml:"fee_growth"`
	FeeFrequency int             `json:"feeFrequency" yaml:"fee_frequency"`
}

// Enrollment returns the student count for a year offset from the modeled
// start, climbing linearly from the initial enrollment to capacity over the
// ramp-up window.
func (c CurriculumConfig) Enrollment(offset int) decimal.Decimal {
	if !c.Enabled {
		return decimal.Zero
	}
	if c.RampUpYears <= 0 || offset >= c.RampUpYears {
		return c.Capacity
	}
	if offset < 0 {
		offset = 0
	}
	span := c.Capacity.Sub(c.InitialEnrollment)
	progress := decimal.NewFromInt(int64(offset)).Div(decimal.NewFromInt(int64(c.RampUpYears)))
	return c.InitialEnrollment.Add(span.Mul(progress))
}

// Fee returns the per-student tuition fee for a year offset, escalated on
// the configured cadence.
func (c CurriculumConfig) Fee(offset int) decimal.Decimal {
	return num.CompoundStep(c.BaseFee, c.FeeGrowth, offset, c.FeeFrequency)
}

// StaffCostConfig describes the staff cost build-up: a fixed base plus a
// variable cost per enrolled student, both escalated on a cadence.
type StaffCostConfig struct {
	FixedBase           decimal.Decimal `json:"fixedBase" yaml:"fixed_base"`
	VariablePerStudent  decimal.Decimal `json:"variablePerStudent" yaml:"variable_per_student"`
	EscalationRate      decimal.Decimal `json:"escalationRate" yaml:"escalation_rate"`
	EscalationFrequency int             `json:"escalationFrequency" yaml:"escalation_frequency"`
}

// Cost returns the staff cost for a year offset and total enrollment.
func (s StaffCostConfig) Cost(offset int, enrollment decimal.Decimal) decimal.Decimal {
	fixed := num.CompoundStep(s.FixedBase, s.EscalationRate, offset, s.EscalationFrequency)
	variable := num.CompoundStep(s.VariablePerStudent, s.EscalationRate, offset, s.EscalationFrequency)
	return fixed.Add(variable.Mul(enrollment))
}

// DynamicPeriodInput is the template applied year-by-year across the Modeled
// horizon.
type DynamicPeriodInput struct {
	StartYear        int                `json:"startYear" yaml:"start_year"`
	Curricula        []CurriculumConfig `json:"curricula" yaml:"curricula"`
	Staff            StaffCostConfig    `json:"staff" yaml:"staff"`
	OtherOpexPercent decimal.Decimal    `json:"otherOpexPercent" yaml:"other_opex_percent"`
}

// Validate rejects malformed dynamic-period configuration.
func (d DynamicPeriodInput) Validate() error {
	if d.StartYear <= 0 {
		return fmt.Errorf("dynamic: start year %d is invalid", d.StartYear)
	}
	if len(d.Curricula) == 0 {
		return fmt.Errorf("dynamic: at least one curriculum is required")
	}
	for _, c := range d.Curricula {
		if c.Capacity.IsNegative() {
			return fmt.Errorf("dynamic: curriculum %q capacity %s is negative", c.Name, c.Capacity)
		}
		if c.RampUpYears < 0 {
			return fmt.Errorf("dynamic: curriculum %q ramp-up years %d is negative", c.Name, c.RampUpYears)
		}
		if c.BaseFee.IsNegative() {
			return fmt.Errorf("dynamic: curriculum %q base fee %s is negative", c.Name, c.BaseFee)
		}
		if c.FeeFrequency < 0 {
			return fmt.Errorf("dynamic: curriculum %q fee frequency %d is negative", c.Name, c.FeeFrequency)
		}
	}
	if d.Staff.EscalationFrequency < 0 {
		return fmt.Errorf("dynamic: staff escalation frequency %d is negative", d.Staff.EscalationFrequency)
	}
	if d.OtherOpexPercent.IsNegative() {
		return fmt.Errorf("dynamic: other opex percent %s is negative", d.OtherOpexPercent)
	}
	return nil
}

// TotalEnrollment sums enrollment across enabled curricula for a year offset.
func (d DynamicPeriodInput) TotalEnrollment(offset int) decimal.Decimal {
	total := decimal.Zero
	for _, c := range d.Curricula {
		total = total.Add(c.Enrollment(offset))
	}
	return total
}

// TuitionRevenue sums enrollment x fee across enabled curricula for a year
// offset.
func (d DynamicPeriodInput) TuitionRevenue(offset int) decimal.Decimal {
	total := decimal.Zero
	for _, c := range d.Curricula {
		total = total.Add(c.Enrollment(offset).Mul(c.Fee(offset)))
	}
	return total
}

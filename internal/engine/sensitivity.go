package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/metrics"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/num"
	"github.com/helalifaker/Project-2052-sub001/internal/rent"
)

// Variable selects which input a sensitivity sweep perturbs.
type Variable string

const (
	VarTuitionFee       Variable = "tuition_fee"
	VarEnrollment       Variable = "enrollment"
	VarStaffCost        Variable = "staff_cost"
	VarOtherOpex        Variable = "other_opex"
	VarRentGrowth       Variable = "rent_growth"
	VarZakatRate        Variable = "zakat_rate"
	VarDebtInterestRate Variable = "debt_interest_rate"
)

// Metric selects which summary figure a sweep reports.
type Metric string

const (
	MetricTotalNetIncome   Metric = "total_net_income"
	MetricCumulativeEBITDA Metric = "cumulative_ebitda"
	MetricFinalCash        Metric = "final_cash"
	MetricPeakDebt         Metric = "peak_debt"
	MetricNPV              Metric = "npv"
)

// SweepSpec describes a one-variable-at-a-time perturbation sweep: Points
// evenly spaced percentage offsets spanning +-Range around the baseline.
type SweepSpec struct {
	Variable Variable        `json:"variable" yaml:"variable"`
	Metric   Metric          `json:"metric" yaml:"metric"`
	Range    decimal.Decimal `json:"range" yaml:"range"`
	Points   int             `json:"points" yaml:"points"`
}

// SweepPoint is the metric observed at one offset.
type SweepPoint struct {
	Offset decimal.Decimal `json:"offset"`
	Value  decimal.Decimal `json:"value"`
}

// SweepResult is one variable's full sweep plus its peak-to-trough impact
// for tornado ranking.
type SweepResult struct {
	Variable Variable        `json:"variable"`
	Metric   Metric          `json:"metric"`
	Points   []SweepPoint    `json:"points"`
	Impact   decimal.Decimal `json:"impact"`
}

// Sweep runs the whole engine at each offset of the spec, holding every
// other input at baseline. Runs share no state; the baseline input is never
// mutated.
func Sweep(baseline Input, spec SweepSpec) (SweepResult, error) {
	if spec.Points < 2 {
		return SweepResult{}, fmt.Errorf("sensitivity: at least 2 points required, got %d", spec.Points)
	}
	if !spec.Range.IsPositive() {
		return SweepResult{}, fmt.Errorf("sensitivity: range %s must be positive", spec.Range)
	}

	result := SweepResult{Variable: spec.Variable, Metric: spec.Metric}
	step := spec.Range.Mul(decimal.NewFromInt(2)).Div(decimal.NewFromInt(int64(spec.Points - 1)))

	var minVal, maxVal decimal.Decimal
	for i := 0; i < spec.Points; i++ {
		offset := spec.Range.Neg().Add(step.Mul(decimal.NewFromInt(int64(i))))
		perturbed, err := perturb(baseline, spec.Variable, num.One.Add(offset))
		if err != nil {
			return SweepResult{}, err
		}
		out, err := Run(perturbed)
		if err != nil {
			return SweepResult{}, fmt.Errorf("sensitivity: %s at offset %s: %w", spec.Variable, offset, err)
		}
		value, err := pick(out.Metrics, spec.Metric)
		if err != nil {
			return SweepResult{}, err
		}
		result.Points = append(result.Points, SweepPoint{Offset: offset, Value: value})
		if i == 0 {
			minVal, maxVal = value, value
		} else {
			minVal = num.Min(minVal, value)
			maxVal = num.Max(maxVal, value)
		}
	}
	result.Impact = maxVal.Sub(minVal)
	return result, nil
}

// SweepAll sweeps several variables against the same metric and ranks the
// results descending by impact.
func SweepAll(baseline Input, variables []Variable, metric Metric, rng decimal.Decimal, points int) ([]SweepResult, error) {
	out := make([]SweepResult, 0, len(variables))
	for _, v := range variables {
		r, err := Sweep(baseline, SweepSpec{Variable: v, Metric: metric, Range: rng, Points: points})
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Impact.GreaterThan(out[j].Impact)
	})
	return out, nil
}

// perturb returns a copy of the input with one variable scaled by factor.
// Slices reached by the perturbation are deep-copied first.
func perturb(in Input, v Variable, factor decimal.Decimal) (Input, error) {
	out := in
	switch v {
	case VarTuitionFee:
		out.Dynamic.Curricula = copyCurricula(in.Dynamic.Curricula)
		for i := range out.Dynamic.Curricula {
			out.Dynamic.Curricula[i].BaseFee = out.Dynamic.Curricula[i].BaseFee.Mul(factor)
		}
	case VarEnrollment:
		out.Dynamic.Curricula = copyCurricula(in.Dynamic.Curricula)
		for i := range out.Dynamic.Curricula {
			out.Dynamic.Curricula[i].Capacity = out.Dynamic.Curricula[i].Capacity.Mul(factor)
			out.Dynamic.Curricula[i].InitialEnrollment = out.Dynamic.Curricula[i].InitialEnrollment.Mul(factor)
		}
	case VarStaffCost:
		out.Dynamic.Staff.FixedBase = in.Dynamic.Staff.FixedBase.Mul(factor)
		out.Dynamic.Staff.VariablePerStudent = in.Dynamic.Staff.VariablePerStudent.Mul(factor)
	case VarOtherOpex:
		out.Dynamic.OtherOpexPercent = in.Dynamic.OtherOpexPercent.Mul(factor)
	case VarRentGrowth:
		out.Rent = copyRent(in.Rent)
		switch {
		case out.Rent.FixedEscalation != nil:
			out.Rent.FixedEscalation.GrowthRate = out.Rent.FixedEscalation.GrowthRate.Mul(factor)
		case out.Rent.PartnerInvestment != nil:
			out.Rent.PartnerInvestment.GrowthRate = out.Rent.PartnerInvestment.GrowthRate.Mul(factor)
		case out.Rent.RevenueShare != nil:
			out.Rent.RevenueShare.SharePercent = out.Rent.RevenueShare.SharePercent.Mul(factor)
		}
	case VarZakatRate:
		out.System.ZakatRate = in.System.ZakatRate.Mul(factor)
	case VarDebtInterestRate:
		out.System.DebtInterestRate = in.System.DebtInterestRate.Mul(factor)
	default:
		return Input{}, fmt.Errorf("sensitivity: unknown variable %q", v)
	}
	return out, nil
}

func pick(s metrics.Summary, m Metric) (decimal.Decimal, error) {
	switch m {
	case MetricTotalNetIncome:
		return s.TotalNetIncome, nil
	case MetricCumulativeEBITDA:
		return s.CumulativeEBITDA, nil
	case MetricFinalCash:
		return s.FinalCash, nil
	case MetricPeakDebt:
		return s.PeakDebt, nil
	case MetricNPV:
		if s.NPV == nil {
			return decimal.Zero, fmt.Errorf("sensitivity: npv requested but no discount rate configured")
		}
		return *s.NPV, nil
	}
	return decimal.Zero, fmt.Errorf("sensitivity: unknown metric %q", m)
}

func copyCurricula(in []model.CurriculumConfig) []model.CurriculumConfig {
	out := make([]model.CurriculumConfig, len(in))
	copy(out, in)
	return out
}

func copyRent(in rent.Config) rent.Config {
	out := in
	if in.FixedEscalation != nil {
		p := *in.FixedEscalation
		out.FixedEscalation = &p
	}
	if in.RevenueShare != nil {
		p := *in.RevenueShare
		out.RevenueShare = &p
	}
	if in.PartnerInvestment != nil {
		p := *in.PartnerInvestment
		out.PartnerInvestment = &p
	}
	return out
}

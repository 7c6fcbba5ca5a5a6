// Package engine sequences the full multi-period projection: Actual periods
// as given, then Bridging, then Modeled year-by-year across the contract
// horizon, each period seeded by the previous one's ending balance sheet.
// After the series is built it runs whole-run validation and computes the
// summary metrics and performance report.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/helalifaker/Project-2052-sub001/internal/capex"
	"github.com/helalifaker/Project-2052-sub001/internal/metrics"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/period"
	"github.com/helalifaker/Project-2052-sub001/internal/rent"
	"github.com/helalifaker/Project-2052-sub001/internal/solver"
)

// Input is the complete caller-supplied description of one run. It is
// treated as read-only for the duration of the run.
type Input struct {
	System     model.SystemConfiguration     `json:"system" yaml:"system"`
	Historical []model.HistoricalPeriodInput `json:"historical" yaml:"historical"`
	Transition []model.TransitionPeriodInput `json:"transition" yaml:"transition"`
	Dynamic    model.DynamicPeriodInput      `json:"dynamic" yaml:"dynamic"`
	Ratios     model.WorkingCapitalRatios    `json:"ratios" yaml:"ratios"`
	Rent       rent.Config                   `json:"rent" yaml:"rent"`
	CapEx      capex.Config                  `json:"capex" yaml:"capex"`
	Solver     solver.Config                 `json:"solver" yaml:"solver"`

	// ContractYears sets the Modeled horizon length, commonly 25 or 30.
	ContractYears int `json:"contractYears" yaml:"contract_years"`
}

// Validate rejects malformed input before any period is computed.
func (in Input) Validate() error {
	if err := in.System.Validate(); err != nil {
		return err
	}
	if len(in.Historical) == 0 {
		return fmt.Errorf("engine: at least one historical period is required")
	}
	if err := in.Dynamic.Validate(); err != nil {
		return err
	}
	if err := in.Rent.Validate(); err != nil {
		return err
	}
	if err := in.CapEx.Validate(); err != nil {
		return err
	}
	if err := in.Solver.Validate(); err != nil {
		return err
	}
	if in.ContractYears <= 0 {
		return fmt.Errorf("engine: contract years %d must be positive", in.ContractYears)
	}
	return nil
}

// Output is everything a run produces.
type Output struct {
	Periods     []model.FinancialPeriod `json:"periods"`
	Metrics     metrics.Summary         `json:"metrics"`
	Validation  ValidationReport        `json:"validation"`
	Performance PerformanceReport       `json:"performance"`
}

// PerformanceReport records run cost.
type PerformanceReport struct {
	CalculationTimeMs int64   `json:"calculationTimeMs"`
	TotalIterations   int     `json:"totalIterations"`
	AverageIterations float64 `json:"averageIterationsPerYear"`
	PeriodCount       int     `json:"periodCount"`
}

// Run executes the whole projection. Configuration and non-convergence
// errors abort the run; reconciliation residuals accumulate into the
// validation report instead.
func Run(in Input) (*Output, error) {
	start := time.Now()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ratios := in.Ratios
	if ratios.IsZero() {
		ratios = model.DeriveRatios(lastHistorical(in.Historical))
	}

	rentModel, err := rent.New(in.Rent, in.Dynamic.StartYear)
	if err != nil {
		return nil, err
	}
	capexEngine, err := capex.NewEngine(in.CapEx)
	if err != nil {
		return nil, err
	}

	calc := &period.Calculator{
		System: in.System,
		Ratios: ratios,
		Rent:   rentModel,
		CapEx:  capexEngine,
		Solver: in.Solver,
	}

	total := len(in.Historical) + len(in.Transition) + in.ContractYears
	periods := make([]model.FinancialPeriod, 0, total)
	totalIterations := 0

	var prev *model.FinancialPeriod
	for _, h := range sortedHistorical(in.Historical) {
		p := calc.Actual(h, prev)
		periods = append(periods, p)
		prev = &periods[len(periods)-1]
	}

	for _, t := range sortedTransition(in.Transition) {
		p := calc.Bridging(t, *prev)
		totalIterations += p.IterationsRequired
		periods = append(periods, p)
		prev = &periods[len(periods)-1]
	}

	endYear := in.Dynamic.StartYear + in.ContractYears - 1
	for year := in.Dynamic.StartYear; year <= endYear; year++ {
		p, err := calc.Modeled(in.Dynamic, year, *prev)
		if err != nil {
			return nil, err
		}
		totalIterations += p.IterationsRequired
		periods = append(periods, p)
		prev = &periods[len(periods)-1]
	}

	modeledYears := in.ContractYears + len(in.Transition)
	perf := PerformanceReport{
		CalculationTimeMs: time.Since(start).Milliseconds(),
		TotalIterations:   totalIterations,
		PeriodCount:       len(periods),
	}
	if modeledYears > 0 {
		perf.AverageIterations = float64(totalIterations) / float64(modeledYears)
	}

	return &Output{
		Periods:     periods,
		Metrics:     metrics.Summarize(periods, in.System.DiscountRate),
		Validation:  Validate(periods),
		Performance: perf,
	}, nil
}

func lastHistorical(hs []model.HistoricalPeriodInput) model.HistoricalPeriodInput {
	last := hs[0]
	for _, h := range hs[1:] {
		if h.Year > last.Year {
			last = h
		}
	}
	return last
}

func sortedHistorical(hs []model.HistoricalPeriodInput) []model.HistoricalPeriodInput {
	out := make([]model.HistoricalPeriodInput, len(hs))
	copy(out, hs)
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func sortedTransition(ts []model.TransitionPeriodInput) []model.TransitionPeriodInput {
	out := make([]model.TransitionPeriodInput, len(ts))
	copy(out, ts)
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

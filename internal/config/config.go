// Package config loads and saves scenario files: the complete YAML
// description of one projection run.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/helalifaker/Project-2052-sub001/internal/capex"
	"github.com/helalifaker/Project-2052-sub001/internal/engine"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/rent"
	"github.com/helalifaker/Project-2052-sub001/internal/solver"
)

// Scenario is the top-level scenario file shape.
type Scenario struct {
	Name  string       `json:"name" yaml:"name"`
	Input engine.Input `json:"input" yaml:",inline"`
}

// Load reads a scenario file from disk and validates it.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if s.Input.Solver.MaxIterations == 0 {
		s.Input.Solver = solver.Default()
	}
	if err := s.Input.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// LoadUnchecked reads a scenario file without validating it. Useful for
// inspecting partial scenarios.
func LoadUnchecked(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// Save writes a scenario to a YAML file.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default returns a complete runnable benchmark scenario: two Actual years,
// three Bridging years and a 25-year contract from 2028.
func Default(name string) *Scenario {
	return &Scenario{
		Name: name,
		Input: engine.Input{
			System: model.SystemConfiguration{
				ZakatRate:           dec("0.025"),
				DebtInterestRate:    dec("0.06"),
				DepositInterestRate: dec("0.02"),
				MinCashBalance:      dec("2000000"),
				DiscountRate:        dec("0.08"),
			},
			Historical: []model.HistoricalPeriodInput{
				{
					Year:      2023,
					Immutable: true,
					ProfitLoss: model.ProfitLoss{
						TuitionRevenue:  dec("42000000"),
						OtherRevenue:    dec("3000000"),
						InterestIncome:  dec("80000"),
						RentExpense:     dec("8000000"),
						StaffCost:       dec("19000000"),
						OtherOpex:       dec("6500000"),
						Depreciation:    dec("4000000"),
						InterestExpense: dec("660000"),
						Zakat:           dec("173000"),
					},
					BalanceSheet: model.BalanceSheet{
						Cash:                    dec("4000000"),
						Receivables:             dec("3600000"),
						Prepaid:                 dec("1400000"),
						GrossPPE:                dec("58000000"),
						AccumulatedDepreciation: dec("16000000"),
						Payables:                dec("2800000"),
						Accrued:                 dec("1900000"),
						DeferredRevenue:         dec("5400000"),
						Debt:                    dec("11000000"),
						Equity:                  dec("29900000"),
					},
				},
				{
					Year:      2024,
					Immutable: true,
					ProfitLoss: model.ProfitLoss{
						TuitionRevenue:  dec("46500000"),
						OtherRevenue:    dec("3500000"),
						InterestIncome:  dec("100000"),
						RentExpense:     dec("8000000"),
						StaffCost:       dec("20000000"),
						OtherOpex:       dec("7000000"),
						Depreciation:    dec("4000000"),
						InterestExpense: dec("600000"),
						Zakat:           dec("262500"),
					},
					BalanceSheet: model.BalanceSheet{
						Cash:                    dec("5000000"),
						Receivables:             dec("4000000"),
						Prepaid:                 dec("1500000"),
						GrossPPE:                dec("60000000"),
						AccumulatedDepreciation: dec("20000000"),
						Payables:                dec("3000000"),
						Accrued:                 dec("2000000"),
						DeferredRevenue:         dec("6000000"),
						Debt:                    dec("10000000"),
						Equity:                  dec("29500000"),
					},
				},
			},
			Transition: []model.TransitionPeriodInput{
				{Year: 2025, TuitionGrowthRate: dec("0.15")},
				{Year: 2026, TuitionGrowthRate: dec("0.12")},
				{Year: 2027, TuitionGrowthRate: dec("0.10")},
			},
			Dynamic: model.DynamicPeriodInput{
				StartYear: 2028,
				Curricula: []model.CurriculumConfig{
					{
						Name:              "national",
						Enabled:           true,
						Capacity:          dec("3000"),
						InitialEnrollment: dec("2400"),
						RampUpYears:       3,
						BaseFee:           dec("20000"),
						FeeGrowth:         dec("0.03"),
						FeeFrequency:      1,
					},
				},
				Staff: model.StaffCostConfig{
					FixedBase:           dec("12000000"),
					VariablePerStudent:  dec("4000"),
					EscalationRate:      dec("0.03"),
					EscalationFrequency: 1,
				},
				OtherOpexPercent: dec("0.10"),
			},
			Rent: rent.Config{
				Kind: rent.KindFixedEscalation,
				FixedEscalation: &rent.FixedEscalationParams{
					BaseRent:   dec("10000000"),
					GrowthRate: dec("0.03"),
					Frequency:  1,
				},
			},
			CapEx: capex.Config{
				Categories: []capex.Category{
					{
						ID:                "buildings",
						AssetType:         "building",
						UsefulLife:        20,
						ReinvestFrequency: 5,
						ReinvestAmount:    dec("5000000"),
						StartYear:         2028,
					},
					{
						ID:                "it",
						AssetType:         "equipment",
						UsefulLife:        4,
						ReinvestFrequency: 4,
						ReinvestAmount:    dec("1500000"),
						StartYear:         2028,
					},
				},
				Historical: capex.HistoricalState{
					GrossPPE:                dec("60000000"),
					AccumulatedDepreciation: dec("20000000"),
					AnnualDepreciation:      dec("4000000"),
				},
			},
			Solver:        solver.Default(),
			ContractYears: 25,
		},
	}
}

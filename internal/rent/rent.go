// Package rent implements the interchangeable rent-payment strategies. Each
// model is a pure function of its parameters, the year offset and (for the
// revenue-share model) the current period's revenue.
package rent

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// Kind selects one of the three rent models.
type Kind string

const (
	KindFixedEscalation   Kind = "fixed_escalation"
	KindRevenueShare      Kind = "revenue_share"
	KindPartnerInvestment Kind = "partner_investment"
)

// Model produces a period's rent expense.
type Model interface {
	// Rent returns the rent expense for a calendar year given that period's
	// total revenue.
	Rent(year int, revenue decimal.Decimal) decimal.Decimal
}

// FixedEscalationParams configures stepped escalation over a base rent.
type FixedEscalationParams struct {
	BaseRent   decimal.Decimal `json:"baseRent" yaml:"base_rent"`
	GrowthRate decimal.Decimal `json:"growthRate" yaml:"growth_rate"`
	Frequency  int             `json:"frequency" yaml:"frequency"`
}

// RevenueShareParams configures rent as a share of revenue with an optional
// floor.
type RevenueShareParams struct {
	SharePercent decimal.Decimal `json:"sharePercent" yaml:"share_percent"`
	Floor        decimal.Decimal `json:"floor" yaml:"floor"`
}

// PartnerInvestmentParams configures rent as a yield on the partner's land
// and construction investment, optionally escalated the same stepped way as
// fixed escalation.
type PartnerInvestmentParams struct {
	LandSize                decimal.Decimal `json:"landSize" yaml:"land_size"`
	LandPrice               decimal.Decimal `json:"landPrice" yaml:"land_price"`
	BuildingArea            decimal.Decimal `json:"buildingArea" yaml:"building_area"`
	ConstructionCostPerArea decimal.Decimal `json:"constructionCostPerArea" yaml:"construction_cost_per_area"`
	YieldRate               decimal.Decimal `json:"yieldRate" yaml:"yield_rate"`
	GrowthRate              decimal.Decimal `json:"growthRate" yaml:"growth_rate"`
	Frequency               int             `json:"frequency" yaml:"frequency"`
}

// Config is the tagged union selecting and parameterizing a rent model.
type Config struct {
	Kind              Kind                     `json:"kind" yaml:"kind"`
	FixedEscalation   *FixedEscalationParams   `json:"fixedEscalation,omitempty" yaml:"fixed_escalation,omitempty"`
	RevenueShare      *RevenueShareParams      `json:"revenueShare,omitempty" yaml:"revenue_share,omitempty"`
	PartnerInvestment *PartnerInvestmentParams `json:"partnerInvestment,omitempty" yaml:"partner_investment,omitempty"`
}

// Validate rejects a config whose selected model is missing its parameters.
func (c Config) Validate() error {
	switch c.Kind {
	case KindFixedEscalation:
		if c.FixedEscalation == nil {
			return fmt.Errorf("rent: %s selected without parameters", c.Kind)
		}
		if c.FixedEscalation.Frequency < 0 {
			return fmt.Errorf("rent: frequency %d is negative", c.FixedEscalation.Frequency)
		}
		if c.FixedEscalation.BaseRent.IsNegative() {
			return fmt.Errorf("rent: base rent %s is negative", c.FixedEscalation.BaseRent)
		}
	case KindRevenueShare:
		if c.RevenueShare == nil {
			return fmt.Errorf("rent: %s selected without parameters", c.Kind)
		}
		if c.RevenueShare.SharePercent.IsNegative() {
			return fmt.Errorf("rent: share percent %s is negative", c.RevenueShare.SharePercent)
		}
	case KindPartnerInvestment:
		if c.PartnerInvestment == nil {
			return fmt.Errorf("rent: %s selected without parameters", c.Kind)
		}
		if c.PartnerInvestment.Frequency < 0 {
			return fmt.Errorf("rent: frequency %d is negative", c.PartnerInvestment.Frequency)
		}
		if c.PartnerInvestment.YieldRate.IsNegative() {
			return fmt.Errorf("rent: yield rate %s is negative", c.PartnerInvestment.YieldRate)
		}
	default:
		return fmt.Errorf("rent: unknown model kind %q", c.Kind)
	}
	return nil
}

// New builds the configured model. startYear anchors the escalation clock:
// period offset 0 is startYear.
func New(c Config, startYear int) (Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case KindFixedEscalation:
		return &fixedEscalation{params: *c.FixedEscalation, startYear: startYear}, nil
	case KindRevenueShare:
		return &revenueShare{params: *c.RevenueShare}, nil
	case KindPartnerInvestment:
		return &partnerInvestment{params: *c.PartnerInvestment, startYear: startYear}, nil
	}
	return nil, fmt.Errorf("rent: unknown model kind %q", c.Kind)
}

type fixedEscalation struct {
	params    FixedEscalationParams
	startYear int
}

func (m *fixedEscalation) Rent(year int, _ decimal.Decimal) decimal.Decimal {
	return num.CompoundStep(m.params.BaseRent, m.params.GrowthRate, year-m.startYear, m.params.Frequency)
}

type revenueShare struct {
	params RevenueShareParams
}

func (m *revenueShare) Rent(_ int, revenue decimal.Decimal) decimal.Decimal {
	return num.Max(revenue.Mul(m.params.SharePercent), m.params.Floor)
}

type partnerInvestment struct {
	params    PartnerInvestmentParams
	startYear int
}

// baseAmount is (landSize*landPrice + buildingArea*costPerArea) * yieldRate.
func (m *partnerInvestment) baseAmount() decimal.Decimal {
	investment := m.params.LandSize.Mul(m.params.LandPrice).
		Add(m.params.BuildingArea.Mul(m.params.ConstructionCostPerArea))
	return investment.Mul(m.params.YieldRate)
}

func (m *partnerInvestment) Rent(year int, _ decimal.Decimal) decimal.Decimal {
	return num.CompoundStep(m.baseAmount(), m.params.GrowthRate, year-m.startYear, m.params.Frequency)
}

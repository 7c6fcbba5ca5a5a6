// Package capex tracks asset categories, schedules reinvestment and computes
// annual depreciation and net book value across the projection horizon.
//
// Two regimes coexist: assets that existed before the Actual/Bridging
// boundary consume a pre-computed fixed annual schedule until their remaining
// depreciable base is exhausted; everything acquired from Bridging onward
// (including auto-generated reinvestment assets) depreciates straight-line
// at amount/usefulLife. No category's net book value ever goes negative.
package capex

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/num"
)

// Category describes one asset category and its reinvestment policy.
type Category struct {
	ID         string `json:"id" yaml:"id"`
	AssetType  string `json:"assetType" yaml:"asset_type"`
	UsefulLife int    `json:"usefulLife" yaml:"useful_life"`

	// ReinvestFrequency of zero disables reinvestment for the category.
	ReinvestFrequency int             `json:"reinvestFrequency" yaml:"reinvest_frequency"`
	ReinvestAmount    decimal.Decimal `json:"reinvestAmount" yaml:"reinvest_amount"`
	StartYear         int             `json:"startYear" yaml:"start_year"`
}

// HistoricalState carries the PPE position at the Actual/Bridging boundary.
type HistoricalState struct {
	GrossPPE                decimal.Decimal `json:"grossPPE" yaml:"gross_ppe"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation" yaml:"accumulated_depreciation"`
	AnnualDepreciation      decimal.Decimal `json:"annualDepreciation" yaml:"annual_depreciation"`
}

// VirtualAsset is materialized when a category's reinvestment fires. It
// depreciates straight-line from its acquisition year.
type VirtualAsset struct {
	CategoryID string          `json:"categoryId"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	annual     decimal.Decimal
	NetBook    decimal.Decimal `json:"netBookValue"`
}

// Config is the caller-supplied CapEx configuration.
type Config struct {
	Categories []Category      `json:"categories" yaml:"categories"`
	Historical HistoricalState `json:"historical" yaml:"historical"`
}

// Validate rejects malformed categories.
func (c Config) Validate() error {
	for _, cat := range c.Categories {
		if cat.UsefulLife <= 0 {
			return fmt.Errorf("capex: category %q useful life %d must be positive", cat.ID, cat.UsefulLife)
		}
		if cat.ReinvestFrequency < 0 {
			return fmt.Errorf("capex: category %q reinvest frequency %d is negative", cat.ID, cat.ReinvestFrequency)
		}
		if cat.ReinvestAmount.IsNegative() {
			return fmt.Errorf("capex: category %q reinvest amount %s is negative", cat.ID, cat.ReinvestAmount)
		}
	}
	if c.Historical.AnnualDepreciation.IsNegative() {
		return fmt.Errorf("capex: historical annual depreciation %s is negative", c.Historical.AnnualDepreciation)
	}
	return nil
}

// Result is the per-year depreciation output.
type Result struct {
	Additions               decimal.Decimal
	Depreciation            decimal.Decimal
	GrossPPE                decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	NetPPE                  decimal.Decimal
}

// Engine holds the running PPE position for one run. It is advanced strictly
// year by year.
type Engine struct {
	cfg Config

	gross decimal.Decimal
	accum decimal.Decimal

	// historicalRemaining is the undepreciated base of pre-boundary assets.
	historicalRemaining decimal.Decimal

	assets []VirtualAsset
}

// NewEngine validates the config and seeds the running position from the
// historical state.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:                 cfg,
		gross:               cfg.Historical.GrossPPE,
		accum:               cfg.Historical.AccumulatedDepreciation,
		historicalRemaining: num.PositivePart(cfg.Historical.GrossPPE.Sub(cfg.Historical.AccumulatedDepreciation)),
	}, nil
}

// Advance processes one calendar year: materializes any reinvestment due,
// depreciates both regimes, and returns the updated position.
func (e *Engine) Advance(year int) Result {
	additions := decimal.Zero

	// Reinvestment fires when the frequency divides the elapsed years since
	// the category's configured start.
	for _, cat := range e.cfg.Categories {
		if cat.ReinvestFrequency <= 0 || cat.ReinvestAmount.IsZero() {
			continue
		}
		elapsed := year - cat.StartYear
		if elapsed <= 0 || elapsed%cat.ReinvestFrequency != 0 {
			continue
		}
		e.assets = append(e.assets, VirtualAsset{
			CategoryID: cat.ID,
			Year:       year,
			Amount:     cat.ReinvestAmount,
			annual:     cat.ReinvestAmount.Div(decimal.NewFromInt(int64(cat.UsefulLife))),
			NetBook:    cat.ReinvestAmount,
		})
		additions = additions.Add(cat.ReinvestAmount)
	}

	depreciation := decimal.Zero

	// Historical fixed-amount schedule, capped at the remaining base.
	histDep := num.Min(e.cfg.Historical.AnnualDepreciation, e.historicalRemaining)
	e.historicalRemaining = e.historicalRemaining.Sub(histDep)
	depreciation = depreciation.Add(histDep)

	// Straight-line pool, floored at zero net book value per asset.
	for i := range e.assets {
		dep := num.Min(e.assets[i].annual, e.assets[i].NetBook)
		e.assets[i].NetBook = e.assets[i].NetBook.Sub(dep)
		depreciation = depreciation.Add(dep)
	}

	e.gross = e.gross.Add(additions)
	e.accum = e.accum.Add(depreciation)

	return Result{
		Additions:               additions,
		Depreciation:            depreciation,
		GrossPPE:                e.gross,
		AccumulatedDepreciation: e.accum,
		NetPPE:                  e.gross.Sub(e.accum),
	}
}

// Assets returns the reinvestment assets materialized so far.
func (e *Engine) Assets() []VirtualAsset {
	out := make([]VirtualAsset, len(e.assets))
	copy(out, e.assets)
	return out
}

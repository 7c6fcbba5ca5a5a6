// Package period turns one fiscal year's inputs plus the prior year's ending
// balance sheet into a complete, self-consistent FinancialPeriod. Three
// calculators cover the three period regimes: Actual maps external history
// 1:1, Bridging projects a few years forward on locked ratios with a
// simplified plug, and Modeled runs the full yearly model through the
// circular solver.
package period

import (
	"github.com/helalifaker/Project-2052-sub001/internal/capex"
	"github.com/helalifaker/Project-2052-sub001/internal/model"
	"github.com/helalifaker/Project-2052-sub001/internal/rent"
	"github.com/helalifaker/Project-2052-sub001/internal/solver"
)

// Calculator carries the run-scoped collaborators shared by all period
// types. It holds no per-period state except the CapEx engine, which is
// advanced strictly in year order.
type Calculator struct {
	System model.SystemConfiguration
	Ratios model.WorkingCapitalRatios
	Rent   rent.Model
	CapEx  *capex.Engine
	Solver solver.Config
}

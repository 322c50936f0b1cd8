// Package scenario runs the full valuation pipeline for one or more target
// revenues: deal structuring, funding allocation, financing, ownership,
// projections and the metric battery, plus the validation warning pass.
package scenario

import (
	"time"

	"acquisition_calc/pkg/core/deal"
	"acquisition_calc/pkg/core/equity"
	"acquisition_calc/pkg/core/funding"
	"acquisition_calc/pkg/core/metrics"
	"acquisition_calc/pkg/core/projection"
)

// Input is one computation request. Zero-value Assumptions or nil Sources
// fall back to the canonical defaults.
type Input struct {
	TargetRevenues []float64         `json:"target_revenues"`
	Assumptions    *deal.Assumptions `json:"assumptions,omitempty"`
	Sources        funding.SourceSet `json:"sources,omitempty"`
}

// Metric pairs a computed value with its band classification.
type Metric struct {
	Value float64      `json:"value"`
	Band  metrics.Band `json:"band"`
	Label string       `json:"label"`
}

// IRRResult carries the internal rate of return with its convergence flag; a
// non-converged solve is reported as such, never as 0%.
type IRRResult struct {
	Rate      float64 `json:"rate"`
	Converged bool    `json:"converged"`
}

// Report is the banded metric battery for one scenario.
type Report struct {
	DSCR               Metric `json:"dscr"`
	CashOnCash         Metric `json:"cash_on_cash"`
	CapitalUtilization Metric `json:"capital_utilization"`
	Leverage           Metric `json:"leverage"`
	PriceToRevenue     Metric `json:"price_to_revenue"`
	EBITDAMargin       Metric `json:"ebitda_margin"`
	CashConversion     Metric `json:"cash_conversion"`
	RevenueEfficiency  Metric `json:"revenue_efficiency"`
	RiskAdjustedReturn Metric `json:"risk_adjusted_return"`
	IncomeReplacement  Metric `json:"income_replacement"`
	WealthVelocity     Metric `json:"wealth_velocity"`
	StressMinROI       Metric `json:"stress_min_roi"`
	GrowthCapacity     Metric `json:"growth_capacity"`

	RiskScore int                    `json:"risk_score"`
	MOIC      float64                `json:"moic"`
	IRR       IRRResult              `json:"irr"`
	Payback   metrics.Payback        `json:"payback"`
	ExitRange metrics.ExitRange      `json:"exit_range"`
	Stress    metrics.StressResult   `json:"stress"`

	DebtToEBITDA     float64               `json:"debt_to_ebitda"`
	BusinessROA      float64               `json:"business_roa"`
	InterestCoverage metrics.CoverageRatio `json:"interest_coverage"`

	WACC                  float64 `json:"wacc"`
	PersonalCostOfCapital float64 `json:"personal_cost_of_capital"`
	EVA                   float64 `json:"eva"`
}

// Result is the complete computed scenario for one target revenue.
type Result struct {
	ID          string    `json:"id"`
	ComputedAt  time.Time `json:"computed_at"`

	TargetRevenue float64            `json:"target_revenue"`
	Structure     deal.Structure     `json:"structure"`
	Allocation    funding.Allocation `json:"allocation"`
	Financing     deal.Financing     `json:"financing"`
	Ownership     equity.Ownership   `json:"ownership"`
	CashFlow      projection.CashFlow `json:"cash_flow"`
	Projections   []projection.Year  `json:"projections"`
	Waterfall     equity.Waterfall   `json:"waterfall"`

	Metrics Report          `json:"metrics"`
	Targets metrics.Targets `json:"targets"`

	// Warnings flag degenerate or uncomfortable configurations. The numbers
	// above are still computed; a warning never blanks a scenario.
	Warnings []string `json:"warnings,omitempty"`
}

// Package metrics implements the dashboard's return and health ratios and the
// threshold banding that classifies each value.
package metrics

// Band classifies a metric value against its domain thresholds.
type Band string

const (
	BandCritical    Band = "critical"
	BandBelowTarget Band = "below-target"
	BandGood        Band = "good"
	BandExcellent   Band = "excellent"
)

// Label returns the display name for a band.
func (b Band) Label() string {
	switch b {
	case BandCritical:
		return "Critical"
	case BandBelowTarget:
		return "Below Target"
	case BandGood:
		return "Good"
	case BandExcellent:
		return "Excellent"
	}
	return string(b)
}

// bandAscending classifies a higher-is-better metric: below crit is critical,
// then below-target, then good, and everything past the good ceiling is
// excellent.
func bandAscending(v, crit, below, good float64) Band {
	switch {
	case v < crit:
		return BandCritical
	case v < below:
		return BandBelowTarget
	case v <= good:
		return BandGood
	default:
		return BandExcellent
	}
}

// bandDescending classifies an inverted (lower-is-better) metric.
func bandDescending(v, crit, below, good float64) Band {
	switch {
	case v > crit:
		return BandCritical
	case v > below:
		return BandBelowTarget
	case v > good:
		return BandGood
	default:
		return BandExcellent
	}
}

// Banding thresholds are domain conventions carried over verbatim; changing
// them changes what the model calls a good deal.

func DSCRBand(v float64) Band              { return bandAscending(v, 1.25, 1.5, 2.0) }
func CashOnCashBand(v float64) Band        { return bandAscending(v, 8, 12, 20) }
func LeverageBand(v float64) Band          { return bandAscending(v, 3, 5, 8) }
func EBITDAMarginBand(v float64) Band      { return bandAscending(v, 15, 18, 22) }
func CashConversionBand(v float64) Band    { return bandAscending(v, 15, 20, 30) }
func RevenueEfficiencyBand(v float64) Band { return bandAscending(v, 3, 4, 6) }
func RiskAdjustedBand(v float64) Band      { return bandAscending(v, 0.5, 1.0, 1.5) }
func IncomeReplacementBand(v float64) Band { return bandAscending(v, 40, 80, 120) }
func WealthVelocityBand(v float64) Band    { return bandAscending(v, 20, 40, 80) }
func StressTestBand(v float64) Band        { return bandAscending(v, 5, 7, 10) }
func GrowthCapacityBand(v float64) Band    { return bandAscending(v, 50000, 100000, 200000) }

// Inverted metrics: tying up less cash and paying less per revenue dollar is
// better.

func CapitalUtilizationBand(v float64) Band { return bandDescending(v, 95, 85, 65) }
func PriceToRevenueBand(v float64) Band     { return bandDescending(v, 1.2, 1.0, 0.8) }

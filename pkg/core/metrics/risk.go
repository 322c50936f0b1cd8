package metrics

// Risk score bounds and baseline.
const (
	riskScoreBase = 5
	riskScoreMin  = 1
	riskScoreMax  = 10
)

// RiskScore condenses deal health into a 1-10 integer, higher is safer.
// Starts at the baseline and moves on coverage, yield and seller alignment.
func RiskScore(dscr, cashOnCashPct, sellerFinancing float64) int {
	score := riskScoreBase

	switch {
	case dscr >= 1.5:
		score += 2
	case dscr >= 1.25:
		score++
	default:
		score -= 2
	}

	switch {
	case cashOnCashPct >= 20:
		score += 2
	case cashOnCashPct >= 15:
		score++
	case cashOnCashPct < 10:
		score--
	}

	// A seller keeping 20%+ of the price on a note has skin in the game.
	if sellerFinancing >= 0.20 {
		score++
	}

	if score < riskScoreMin {
		return riskScoreMin
	}
	if score > riskScoreMax {
		return riskScoreMax
	}
	return score
}

// CoverageRatio is a ratio that can be legitimately infinite (no interest
// burden at all). Infinite coverage is a healthy state, not an error, so it
// gets its own marker instead of being collapsed to 0 or MaxFloat.
type CoverageRatio struct {
	Value    float64 `json:"value"`
	Infinite bool    `json:"infinite"`
}

// InterestCoverage is operating income over the annual interest burden.
func InterestCoverage(operatingIncome, annualInterest float64) CoverageRatio {
	if annualInterest <= 0 {
		return CoverageRatio{Infinite: true}
	}
	return CoverageRatio{Value: operatingIncome / annualInterest}
}

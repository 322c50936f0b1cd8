package metrics

import (
	"math"

	"acquisition_calc/pkg/core/finance"
)

// Exit multiples for the terminal-value range. The expected multiple sits at
// the observed median for SBA-financed service acquisitions, not the midpoint
// of the range.
const (
	ExitMultipleConservative = 3.0
	ExitMultipleExpected     = 3.59
	ExitMultipleOptimistic   = 4.5
)

// MOIC is the multiple on invested capital over the projection horizon:
// cumulative business cash flows plus the terminal value, over personal cash
// invested.
func MOIC(cashFlows []float64, finalYearEBITDA, exitMultiple, personalInvested float64) float64 {
	var total float64
	for _, cf := range cashFlows {
		total += cf
	}
	total += finalYearEBITDA * exitMultiple
	return safeDiv(total, personalInvested)
}

// WealthVelocity annualizes a MOIC over the holding period, in percent.
func WealthVelocity(moic float64, years int) float64 {
	if moic <= 0 || years <= 0 {
		return 0
	}
	return finance.CAGR(moic, 1, years) * 100
}

// Payback reports when cumulative cash flows recover the personal investment.
// WithinHorizon is false when the series never gets there; Years is then the
// horizon length and must not be read as a recovery time.
type Payback struct {
	Years         float64 `json:"years"`
	WithinHorizon bool    `json:"within_horizon"`
}

// PaybackPeriod walks the cash-flow series and interpolates within the
// crossing year.
func PaybackPeriod(personalInvested float64, cashFlows []float64) Payback {
	if personalInvested <= 0 {
		return Payback{Years: 0, WithinHorizon: true}
	}
	var cumulative float64
	for i, cf := range cashFlows {
		if cf > 0 && cumulative+cf >= personalInvested {
			return Payback{
				Years:         float64(i) + (personalInvested-cumulative)/cf,
				WithinHorizon: true,
			}
		}
		cumulative += cf
	}
	return Payback{Years: float64(len(cashFlows)), WithinHorizon: false}
}

// ExitRange is the owner's share of terminal value at the three exit
// multiples.
type ExitRange struct {
	Conservative float64 `json:"conservative"`
	Expected     float64 `json:"expected"`
	Optimistic   float64 `json:"optimistic"`
}

// ExitValueRange scales final-year EBITDA by the exit multiples and the
// owner's stake.
func ExitValueRange(finalYearEBITDA, yourOwnership float64) ExitRange {
	return ExitRange{
		Conservative: finalYearEBITDA * ExitMultipleConservative * yourOwnership,
		Expected:     finalYearEBITDA * ExitMultipleExpected * yourOwnership,
		Optimistic:   finalYearEBITDA * ExitMultipleOptimistic * yourOwnership,
	}
}

// StressResult holds the base ROI under three single-factor shocks and the
// worst of them. All values are percent.
type StressResult struct {
	RevenueDrop       float64 `json:"revenue_drop"`       // -20% revenue
	MarginCompression float64 `json:"margin_compression"` // -300bp margin
	RateIncrease      float64 `json:"rate_increase"`      // +200bp rates
	MinROI            float64 `json:"min_roi"`
}

// StressROI applies the three standard shocks as proportional haircuts to the
// base ROI.
func StressROI(baseROIPct float64) StressResult {
	r := StressResult{
		RevenueDrop:       baseROIPct * 0.80,
		MarginCompression: baseROIPct * 0.97,
		RateIncrease:      baseROIPct * 0.98,
	}
	r.MinROI = math.Min(r.RevenueDrop, math.Min(r.MarginCompression, r.RateIncrease))
	return r
}

// GrowthFundingCapacity estimates how much expansion capital the business
// could raise after the acquisition: the lesser of the senior-debt headroom
// (3x EBITDA less debt already carried) and what year-three cash flow can
// service at the deal's leverage. Floored at zero.
func GrowthFundingCapacity(ebitda, currentTotalDebt, yearThreeCashFlow, leverageMultiplier float64) float64 {
	headroom := 3*ebitda - currentTotalDebt
	serviceable := yearThreeCashFlow * leverageMultiplier
	capacity := math.Min(headroom, serviceable)
	if capacity < 0 {
		return 0
	}
	return capacity
}

// OutcomeWeights are the probabilities assigned to the three scenario
// outcomes.
type OutcomeWeights struct {
	Best   float64 `json:"best"`
	Likely float64 `json:"likely"`
	Worst  float64 `json:"worst"`
}

// NormalizeProbabilities rescales the weights to sum to 1. All-zero weights
// fall back to an even split.
func NormalizeProbabilities(w OutcomeWeights) OutcomeWeights {
	total := w.Best + w.Likely + w.Worst
	if total <= 0 {
		third := 1.0 / 3
		return OutcomeWeights{Best: third, Likely: third, Worst: third}
	}
	return OutcomeWeights{Best: w.Best / total, Likely: w.Likely / total, Worst: w.Worst / total}
}

// ExpectedValue blends three outcome values by normalized probability.
func ExpectedValue(best, likely, worst float64, w OutcomeWeights) float64 {
	w = NormalizeProbabilities(w)
	return best*w.Best + likely*w.Likely + worst*w.Worst
}

// Targeting constants: the affordability rules of thumb used to back into a
// deal size from available cash.
const (
	targetPriceToCash     = 4.0  // max price at 4x available cash
	targetDownPaymentRate = 0.12 // assumed cash need per price dollar
	targetMinimumDSCR     = 1.25
)

// Targets back out the deal envelope a given cash position supports.
type Targets struct {
	MaxSafePurchasePrice float64 `json:"max_safe_purchase_price"`
	MinRequiredEBITDA    float64 `json:"min_required_ebitda"`
	RevenueLow           float64 `json:"revenue_low"`
	RevenueHigh          float64 `json:"revenue_high"`
	MultipleLow          float64 `json:"multiple_low"`
	MultipleHigh         float64 `json:"multiple_high"`
}

// DerivedTargets computes the affordability envelope: the price ceiling from
// available cash, the EBITDA floor that covers debt service at the minimum
// DSCR, a +-20% revenue band around the target, and the customary multiple
// range.
func DerivedTargets(availableCash, targetRevenue float64) Targets {
	maxPrice := availableCash * targetPriceToCash
	return Targets{
		MaxSafePurchasePrice: maxPrice,
		MinRequiredEBITDA:    maxPrice * targetDownPaymentRate / targetMinimumDSCR,
		RevenueLow:           targetRevenue * 0.8,
		RevenueHigh:          targetRevenue * 1.2,
		MultipleLow:          3.5,
		MultipleHigh:         5.0,
	}
}

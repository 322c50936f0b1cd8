package equity

import (
	"acquisition_calc/pkg/core/funding"
)

// WACC returns the weighted average after-tax cost of the allocated capital as
// a decimal fraction. Debt kinds apply their tax-shield factor; equity kinds
// pay the full nominal rate. An empty allocation costs 0.
func WACC(alloc funding.Allocation) float64 {
	var totalFunding, weightedCost float64
	for kind, amount := range alloc.ByKind {
		if amount <= 0 {
			continue
		}
		profile := funding.ProfileFor(kind)
		totalFunding += amount
		weightedCost += amount * profile.Rate * profile.TaxShield
	}
	if totalFunding == 0 {
		return 0
	}
	return weightedCost / totalFunding
}

// PersonalCostOfCapital returns the weighted nominal cost of the buyer's own
// funding (personal loan, personal cash, home equity) as a decimal fraction.
// Outside equity, the seller note and the SBA loan are business-side capital
// and are excluded.
func PersonalCostOfCapital(alloc funding.Allocation) float64 {
	var total, weighted float64
	for kind, amount := range alloc.ByKind {
		if amount <= 0 || !funding.ProfileFor(kind).Personal {
			continue
		}
		total += amount
		weighted += amount * funding.ProfileFor(kind).Rate
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// EVA is the simplified economic value added: after-tax operating profit minus
// the charge on invested capital.
//
//	EVA = EBITDA*(1-t) - capitalInvested*WACC
func EVA(ebitda, taxRate, capitalInvested, wacc float64) float64 {
	nopat := ebitda * (1 - taxRate)
	return nopat - capitalInvested*wacc
}

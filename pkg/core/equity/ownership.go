// Package equity computes the capital-structure outputs of a resolved deal:
// the risk-adjusted ownership split, the weighted cost of capital, EVA and the
// preferred-return distribution waterfall.
package equity

import (
	"acquisition_calc/pkg/core/funding"
)

// OwnershipCap keeps outside investors at a nonzero stake whenever they
// contributed capital.
const OwnershipCap = 0.95

// Ownership is the risk-weighted split between the buyer and outside
// investors.
type Ownership struct {
	YourOwnership     float64 `json:"your_ownership"`
	InvestorOwnership float64 `json:"investor_ownership"`

	Breakdown OwnershipBreakdown `json:"breakdown"`
}

// OwnershipBreakdown exposes the risk-weighted contributions behind the split.
type OwnershipBreakdown struct {
	PersonalCash     float64 `json:"personal_cash"`
	PersonalLoanRisk float64 `json:"personal_loan_risk"`
	HomeEquityRisk   float64 `json:"home_equity_risk"`
	SweatEquity      float64 `json:"sweat_equity"`
	Investor         float64 `json:"investor"`
}

// ComputeOwnership weights each allocated personal contribution by its kind's
// risk multiplier (personal guarantee below par, collateralized assets above),
// adds the fixed sweat-equity credit, and splits against outside equity at
// par. The buyer's share is capped at OwnershipCap only when investors
// actually contributed; with no outside capital the buyer owns 100%.
func ComputeOwnership(alloc funding.Allocation, sweatEquity float64) Ownership {
	breakdown := OwnershipBreakdown{
		SweatEquity: sweatEquity,
		Investor:    alloc.Amount(funding.KindOutsideEquity),
	}
	for kind, amount := range alloc.ByKind {
		if amount <= 0 {
			continue
		}
		profile := funding.ProfileFor(kind)
		if !profile.Personal {
			continue
		}
		weighted := amount * profile.RiskWeight
		switch kind {
		case funding.KindPersonalCash:
			breakdown.PersonalCash = weighted
		case funding.KindPersonalLoan:
			breakdown.PersonalLoanRisk = weighted
		case funding.KindHomeEquity:
			breakdown.HomeEquityRisk = weighted
		}
	}

	personal := breakdown.PersonalCash + breakdown.PersonalLoanRisk + breakdown.HomeEquityRisk + breakdown.SweatEquity

	if breakdown.Investor <= 0 {
		return Ownership{YourOwnership: 1.0, InvestorOwnership: 0, Breakdown: breakdown}
	}

	total := personal + breakdown.Investor
	share := 1.0
	if total > 0 {
		share = personal / total
	}
	if share > OwnershipCap {
		share = OwnershipCap
	}

	return Ownership{
		YourOwnership:     share,
		InvestorOwnership: 1 - share,
		Breakdown:         breakdown,
	}
}

// Waterfall distributes one year of business cash flow under the
// preferred-return structure: investors accrue 8% on contributed capital and
// the buyer 6% on personal cash first, then the remainder splits pro-rata by
// ownership.
type Waterfall struct {
	YourTotalCashFlow     float64 `json:"your_total_cash_flow"`
	InvestorTotalCashFlow float64 `json:"investor_total_cash_flow"`
	YourPreferred         float64 `json:"your_preferred"`
	InvestorPreferred     float64 `json:"investor_preferred"`
	YourROI               float64 `json:"your_roi"`      // percent on personal cash
	InvestorROI           float64 `json:"investor_roi"`  // percent on invested capital
}

const (
	investorPreferredRate = 0.08
	ownerPreferredRate    = 0.06
)

// DistributionWaterfall computes the preferred-return split of a year's
// business cash flow.
func DistributionWaterfall(businessCashFlow float64, own Ownership, alloc funding.Allocation) Waterfall {
	investorAmount := alloc.Amount(funding.KindOutsideEquity)
	personalCash := alloc.Amount(funding.KindPersonalCash)

	investorPreferred := investorAmount * investorPreferredRate
	yourPreferred := personalCash * ownerPreferredRate

	remaining := businessCashFlow - investorPreferred - yourPreferred
	if remaining < 0 {
		remaining = 0
	}

	w := Waterfall{
		YourPreferred:         yourPreferred,
		InvestorPreferred:     investorPreferred,
		YourTotalCashFlow:     yourPreferred + remaining*own.YourOwnership,
		InvestorTotalCashFlow: investorPreferred + remaining*own.InvestorOwnership,
	}
	if personalCash > 0 {
		w.YourROI = w.YourTotalCashFlow / personalCash * 100
	}
	if investorAmount > 0 {
		w.InvestorROI = w.InvestorTotalCashFlow / investorAmount * 100
	}
	return w
}

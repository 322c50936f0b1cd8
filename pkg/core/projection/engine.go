// Package projection builds the business and personal cash-flow series that
// return metrics consume: year-one free cash flow and the compounding
// multi-year forecast.
package projection

import (
	"math"

	"acquisition_calc/pkg/core/deal"
)

// CashFlow is the year-one snapshot of where the money goes.
type CashFlow struct {
	BusinessFreeCashFlow float64 `json:"business_free_cash_flow"`
	OwnerDistribution    float64 `json:"owner_distribution"`
	PersonalNetCashFlow  float64 `json:"personal_net_cash_flow"`
}

// BusinessFreeCashFlow subtracts debt service, management salary and the
// amortized technology investment from EBITDA. Tech spend amortizes
// straight-line over the configured early years (default 3) and drops to zero
// afterwards; year 1 always carries it.
func BusinessFreeCashFlow(ebitda, businessDebtService float64, a deal.Assumptions) float64 {
	return ebitda - businessDebtService - a.ManagementSalary - techAmortization(1, a)
}

// Compute assembles the year-one cash flow from an already-resolved deal.
func Compute(s deal.Structure, fin deal.Financing, yourOwnership float64, a deal.Assumptions) CashFlow {
	fcf := BusinessFreeCashFlow(s.EBITDA, fin.Business.Total, a)
	dist := fcf * yourOwnership
	return CashFlow{
		BusinessFreeCashFlow: fcf,
		OwnerDistribution:    dist,
		PersonalNetCashFlow:  dist - fin.Personal.Total,
	}
}

// Year is one projected year of the forecast.
type Year struct {
	Year    int     `json:"year"` // 1-based
	Revenue float64 `json:"revenue"`
	EBITDA  float64 `json:"ebitda"`
	// BusinessCashFlow is the business FCF for the year; debt service is held
	// constant at origination terms.
	BusinessCashFlow float64 `json:"business_cash_flow"`
	// PersonalCashFlow is the owner's distribution net of personal debt
	// service.
	PersonalCashFlow float64 `json:"personal_cash_flow"`
	// CumulativePersonal is the running sum of PersonalCashFlow.
	CumulativePersonal float64 `json:"cumulative_personal"`
}

// Project builds the N-year forecast. Revenue compounds at the growth rate
// from the target-revenue base: year y revenue = base * (1+g)^(y-1). EBITDA is
// recomputed from the year's revenue; loan payments are fixed at origination.
func Project(s deal.Structure, fin deal.Financing, yourOwnership float64, a deal.Assumptions) []Year {
	horizon := a.ProjectionYears
	if horizon <= 0 {
		horizon = 5
	}

	years := make([]Year, 0, horizon)
	cumulative := 0.0
	for y := 1; y <= horizon; y++ {
		revenue := s.TargetRevenue * math.Pow(1+a.RevenueGrowthRate, float64(y-1))
		ebitda := revenue * a.NetProfitMargin

		businessCF := ebitda - fin.Business.Total - a.ManagementSalary - techAmortization(y, a)
		personalCF := businessCF*yourOwnership - fin.Personal.Total
		cumulative += personalCF

		years = append(years, Year{
			Year:               y,
			Revenue:            revenue,
			EBITDA:             ebitda,
			BusinessCashFlow:   businessCF,
			PersonalCashFlow:   personalCF,
			CumulativePersonal: cumulative,
		})
	}
	return years
}

// BusinessCashFlows extracts the business-level series for IRR/MOIC input.
func BusinessCashFlows(years []Year) []float64 {
	flows := make([]float64, len(years))
	for i, y := range years {
		flows[i] = y.BusinessCashFlow
	}
	return flows
}

// PersonalCashFlows extracts the owner-level series.
func PersonalCashFlows(years []Year) []float64 {
	flows := make([]float64, len(years))
	for i, y := range years {
		flows[i] = y.PersonalCashFlow
	}
	return flows
}

func techAmortization(year int, a deal.Assumptions) float64 {
	amortYears := a.TechAmortYears
	if amortYears <= 0 {
		amortYears = 3
	}
	if year > amortYears {
		return 0
	}
	return a.TechInvestment / float64(amortYears)
}

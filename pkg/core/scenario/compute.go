package scenario

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"acquisition_calc/pkg/core/deal"
	"acquisition_calc/pkg/core/equity"
	"acquisition_calc/pkg/core/finance"
	"acquisition_calc/pkg/core/funding"
	"acquisition_calc/pkg/core/metrics"
	"acquisition_calc/pkg/core/projection"
)

// Ownership reasonableness thresholds for the warning pass.
const (
	minMeaningfulInvestorStake = 0.05
	meaningfulInvestmentFloor  = 50000
	minComfortableOwnerStake   = 0.60
)

// Compute runs the pipeline for every requested target revenue. Scenarios are
// independent; one degenerate revenue does not stop the rest.
func Compute(input Input) []Result {
	a := deal.DefaultAssumptions()
	if input.Assumptions != nil {
		a = *input.Assumptions
	}
	sources := input.Sources
	if sources == nil {
		sources = funding.DefaultSources()
	}

	results := make([]Result, 0, len(input.TargetRevenues))
	for _, revenue := range input.TargetRevenues {
		results = append(results, computeOne(revenue, a, sources))
	}
	return results
}

func computeOne(targetRevenue float64, a deal.Assumptions, sources funding.SourceSet) Result {
	// ==== Deal structure and capital stack ====
	s := deal.NewStructure(targetRevenue, a)
	alloc := funding.Allocate(s.DownPaymentNeeded, sources)
	fin := deal.ResolveFinancing(s, alloc, sources, a)
	own := equity.ComputeOwnership(alloc, a.SweatEquityValue)

	// ==== Cash flows ====
	cf := projection.Compute(s, fin, own.YourOwnership, a)
	years := projection.Project(s, fin, own.YourOwnership, a)
	waterfall := equity.DistributionWaterfall(cf.BusinessFreeCashFlow, own, alloc)

	result := Result{
		ID:            uuid.NewString(),
		ComputedAt:    time.Now().UTC(),
		TargetRevenue: targetRevenue,
		Structure:     s,
		Allocation:    alloc,
		Financing:     fin,
		Ownership:     own,
		CashFlow:      cf,
		Projections:   years,
		Waterfall:     waterfall,
		Targets:       metrics.DerivedTargets(sources.AvailableCash(), targetRevenue),
	}
	result.Metrics = buildReport(result, a, sources)
	result.Warnings = validate(result, a)
	return result
}

func buildReport(r Result, a deal.Assumptions, sources funding.SourceSet) Report {
	s, alloc, fin := r.Structure, r.Allocation, r.Financing
	personalInvested := alloc.PersonalInvested()
	businessFlows := projection.BusinessCashFlows(r.Projections)

	dscr := metrics.DSCR(s.EBITDA, fin.Business.Total)
	coc := metrics.CashOnCash(r.CashFlow.PersonalNetCashFlow, personalInvested)
	riskScore := metrics.RiskScore(dscr, coc, a.SellerFinancing)

	// Utilization counts only the buyer-side capital against what the buyer
	// could raise; the SBA backstop is bank money and does not burn capacity.
	deployed := alloc.TotalAllocated - alloc.Amount(funding.KindSBALoan)
	utilization := metrics.CapitalUtilization(deployed, sources.AvailableCash())

	totalFunding := s.PurchasePrice + s.WorkingCapital + s.Fees
	leverage := metrics.LeverageMultiplier(totalFunding, personalInvested)

	horizon := len(r.Projections)
	var finalEBITDA, yearThreeCF float64
	if horizon > 0 {
		finalEBITDA = r.Projections[horizon-1].EBITDA
	}
	if horizon >= 3 {
		yearThreeCF = r.Projections[2].BusinessCashFlow
	}

	moic := metrics.MOIC(businessFlows, finalEBITDA, a.ExitMultiple, personalInvested)
	stress := metrics.StressROI(coc)
	growth := metrics.GrowthFundingCapacity(s.EBITDA, fin.TotalBusinessDebt(), yearThreeCF, leverage)

	irr, converged := finance.IRR(personalInvested, businessFlows)

	// Interest burden approximated at origination balances.
	annualInterest := fin.SBAPrincipal*a.SBAInterestRate + fin.SellerPrincipal*a.SellerInterestRate

	riskAdjusted := metrics.RiskAdjustedReturn(coc, a.RiskFreeRate*100, riskScore)
	wealthVelocity := metrics.WealthVelocity(moic, horizon)
	incomeReplacement := metrics.IncomeReplacement(r.CashFlow.PersonalNetCashFlow, a.CurrentSalary)
	ebitdaMargin := metrics.EBITDAMargin(s.EBITDA, s.TargetRevenue)
	cashConversion := metrics.CashConversion(r.CashFlow.BusinessFreeCashFlow, s.EBITDA)
	revenueEfficiency := metrics.RevenueEfficiency(s.TargetRevenue, personalInvested)
	priceToRevenue := metrics.PriceToRevenue(s.PurchasePrice, s.TargetRevenue)

	return Report{
		DSCR:               banded(dscr, metrics.DSCRBand),
		CashOnCash:         banded(coc, metrics.CashOnCashBand),
		CapitalUtilization: banded(utilization, metrics.CapitalUtilizationBand),
		Leverage:           banded(leverage, metrics.LeverageBand),
		PriceToRevenue:     banded(priceToRevenue, metrics.PriceToRevenueBand),
		EBITDAMargin:       banded(ebitdaMargin, metrics.EBITDAMarginBand),
		CashConversion:     banded(cashConversion, metrics.CashConversionBand),
		RevenueEfficiency:  banded(revenueEfficiency, metrics.RevenueEfficiencyBand),
		RiskAdjustedReturn: banded(riskAdjusted, metrics.RiskAdjustedBand),
		IncomeReplacement:  banded(incomeReplacement, metrics.IncomeReplacementBand),
		WealthVelocity:     banded(wealthVelocity, metrics.WealthVelocityBand),
		StressMinROI:       banded(stress.MinROI, metrics.StressTestBand),
		GrowthCapacity:     banded(growth, metrics.GrowthCapacityBand),

		RiskScore: riskScore,
		MOIC:      moic,
		IRR:       IRRResult{Rate: irr, Converged: converged},
		Payback:   metrics.PaybackPeriod(personalInvested, businessFlows),
		ExitRange: metrics.ExitValueRange(finalEBITDA, r.Ownership.YourOwnership),
		Stress:    stress,

		DebtToEBITDA:     metrics.DebtToEBITDA(fin.TotalBusinessDebt(), s.EBITDA),
		BusinessROA:      metrics.BusinessROA(r.CashFlow.BusinessFreeCashFlow, s.CapitalInvested()),
		InterestCoverage: metrics.InterestCoverage(s.EBITDA, annualInterest),

		WACC:                  equity.WACC(alloc),
		PersonalCostOfCapital: equity.PersonalCostOfCapital(alloc),
		EVA:                   equity.EVA(s.EBITDA, a.TaxRate, s.CapitalInvested(), equity.WACC(alloc)),
	}
}

func banded(value float64, bandFn func(float64) metrics.Band) Metric {
	band := bandFn(value)
	return Metric{Value: value, Band: band, Label: band.Label()}
}

// validate is the warning pass. It never mutates the result; degenerate
// numbers stay visible alongside their flags.
func validate(r Result, a deal.Assumptions) []string {
	var warnings []string

	if r.TargetRevenue <= 0 {
		warnings = append(warnings, "target revenue is not positive; downstream figures are degenerate")
	}
	if r.Allocation.Shortfall > 0 {
		warnings = append(warnings, fmt.Sprintf("funding shortfall of $%.0f: enabled sources do not cover the cash requirement", r.Allocation.Shortfall))
	}
	if !r.Metrics.IRR.Converged && r.TargetRevenue > 0 {
		warnings = append(warnings, "IRR solver did not converge for this cash-flow profile")
	}

	outside := r.Allocation.Amount(funding.KindOutsideEquity)
	if outside > 0 {
		if r.Ownership.InvestorOwnership < minMeaningfulInvestorStake && outside > meaningfulInvestmentFloor {
			warnings = append(warnings, fmt.Sprintf("investor stake of %.1f%% is out of line with $%.0f invested", r.Ownership.InvestorOwnership*100, outside))
		}
		investorYield := r.CashFlow.BusinessFreeCashFlow * r.Ownership.InvestorOwnership / outside
		if investorYield < a.EquityCost {
			warnings = append(warnings, fmt.Sprintf("investor cash yield of %.1f%% is below the %.1f%% cost of equity", investorYield*100, a.EquityCost*100))
		}
	}
	personalShare := 0.0
	if r.Allocation.TotalAllocated > 0 {
		personalShare = r.Allocation.PersonalInvested() / r.Allocation.TotalAllocated
	}
	if personalShare > 0.5 && r.Ownership.YourOwnership < minComfortableOwnerStake {
		warnings = append(warnings, fmt.Sprintf("owner stake of %.1f%% despite funding %.0f%% of the deal personally", r.Ownership.YourOwnership*100, personalShare*100))
	}

	return warnings
}

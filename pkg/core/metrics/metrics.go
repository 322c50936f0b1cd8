package metrics

// Ratio metrics. Percent-valued metrics return percent numbers (12.5 means
// 12.5%) because their bands are defined on that scale; pure ratios stay
// ratios. Zero denominators yield 0 rather than Inf so a degenerate scenario
// still renders.

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// DSCR is the debt service coverage ratio: EBITDA over total annual business
// debt service.
func DSCR(ebitda, annualDebtService float64) float64 {
	return safeDiv(ebitda, annualDebtService)
}

// CashOnCash is the first-year personal cash yield on personal capital
// invested, in percent.
func CashOnCash(annualPersonalCashFlow, personalInvested float64) float64 {
	return safeDiv(annualPersonalCashFlow, personalInvested) * 100
}

// CapitalUtilization is the share of available personal capital consumed by
// the deal, in percent. Inverted metric: lower is better.
func CapitalUtilization(totalAllocated, availableCash float64) float64 {
	return safeDiv(totalAllocated, availableCash) * 100
}

// LeverageMultiplier is total deal funding per dollar of personal cash.
func LeverageMultiplier(totalInvestment, personalCash float64) float64 {
	return safeDiv(totalInvestment, personalCash)
}

// PriceToRevenue is the purchase multiple on revenue. Inverted metric.
func PriceToRevenue(purchasePrice, revenue float64) float64 {
	return safeDiv(purchasePrice, revenue)
}

// EBITDAMargin in percent.
func EBITDAMargin(ebitda, revenue float64) float64 {
	return safeDiv(ebitda, revenue) * 100
}

// CashConversion is business free cash flow as a share of EBITDA, in percent.
// Measures how much of the operating profit survives debt service and the
// owner cost structure.
func CashConversion(businessFreeCashFlow, ebitda float64) float64 {
	return safeDiv(businessFreeCashFlow, ebitda) * 100
}

// RevenueEfficiency is revenue acquired per dollar of personal investment.
func RevenueEfficiency(revenue, personalInvested float64) float64 {
	return safeDiv(revenue, personalInvested)
}

// RiskAdjustedReturn is the excess return over the risk-free rate per unit of
// risk score. Both rate arguments are percent-valued.
func RiskAdjustedReturn(roiPct, riskFreePct float64, riskScore int) float64 {
	if riskScore <= 0 {
		return 0
	}
	return (roiPct - riskFreePct) / float64(riskScore)
}

// IncomeReplacement is the first-year personal cash flow against the salary
// being given up, in percent.
func IncomeReplacement(personalCashFlow, currentSalary float64) float64 {
	return safeDiv(personalCashFlow, currentSalary) * 100
}

// DebtToEBITDA is total business debt over EBITDA.
func DebtToEBITDA(totalBusinessDebt, ebitda float64) float64 {
	return safeDiv(totalBusinessDebt, ebitda)
}

// BusinessROA is business free cash flow over capital invested, in percent.
func BusinessROA(businessFreeCashFlow, capitalInvested float64) float64 {
	return safeDiv(businessFreeCashFlow, capitalInvested) * 100
}

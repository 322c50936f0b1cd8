// Package finance implements the shared debt and return numerics: fixed-rate
// annuity payments, NPV, the Newton-Raphson IRR solver and CAGR.
// All rates are decimal fractions (0.115 == 11.5%).
package finance

import "math"

// zeroRateEpsilon is the threshold below which a rate is treated as zero and
// the annuity degenerates into straight-line repayment.
const zeroRateEpsilon = 1e-9

// AnnualPayment returns the total payment made over one year on a fixed-rate
// loan with monthly compounding.
//
// A non-positive principal or term means "no loan" and yields 0 rather than an
// error: disabled or unallocated funding sources flow through debt-service
// totals as zeroes.
func AnnualPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if annualRate < zeroRateEpsilon {
		// Zero-rate loan: straight-line principal repayment.
		return principal / float64(termYears)
	}

	// Standard annuity: M = P*r*(1+r)^n / ((1+r)^n - 1), monthly basis.
	monthlyRate := annualRate / 12
	payments := float64(termYears * 12)
	compound := math.Pow(1+monthlyRate, payments)
	monthly := principal * monthlyRate * compound / (compound - 1)
	return monthly * 12
}

// MonthlyPayment returns the single-period payment of the same annuity.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	return AnnualPayment(principal, annualRate, termYears) / 12
}

// CAGR returns the compound annual growth rate between two values.
func CAGR(endingValue, beginningValue float64, years int) float64 {
	if beginningValue == 0 || years == 0 {
		return 0
	}
	return math.Pow(endingValue/beginningValue, 1.0/float64(years)) - 1
}

package finance

import "math"

const (
	irrTolerance     = 0.0001
	irrMaxIterations = 100
	irrInitialGuess  = 0.10
)

// NPV discounts the cash-flow series against an upfront investment.
// cashFlows[t] is received at the end of year t+1.
func NPV(rate, investment float64, cashFlows []float64) float64 {
	npv := -investment
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t+1))
	}
	return npv
}

// IRR solves NPV(rate) = 0 via Newton-Raphson.
//
// Returns (rate, true) on convergence. Non-convergence returns (0, false) —
// a distinct signal from a legitimate 0% IRR, and callers must branch on ok
// rather than treating the zero as a result.
func IRR(investment float64, cashFlows []float64) (float64, bool) {
	if investment <= 0 || len(cashFlows) == 0 {
		return 0, false
	}

	guess := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := -investment
		derivative := 0.0

		for t, cf := range cashFlows {
			discount := math.Pow(1+guess, float64(t+1))
			npv += cf / discount
			derivative -= float64(t+1) * cf / (discount * (1 + guess))
		}

		if derivative == 0 || math.IsNaN(derivative) {
			return 0, false
		}

		next := guess - npv/derivative
		if math.Abs(next-guess) < irrTolerance {
			return next, true
		}
		guess = next
	}

	return 0, false
}

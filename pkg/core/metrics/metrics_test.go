package metrics

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func TestRatioMetrics(t *testing.T) {
	approx(t, "DSCR", DSCR(625000, 400000), 1.5625, 1e-9)
	approx(t, "CashOnCash", CashOnCash(60000, 400000), 15, 1e-9)
	approx(t, "CapitalUtilization", CapitalUtilization(450000, 500000), 90, 1e-9)
	approx(t, "LeverageMultiplier", LeverageMultiplier(2625000, 350000), 7.5, 1e-9)
	approx(t, "PriceToRevenue", PriceToRevenue(2625000, 2500000), 1.05, 1e-9)
	approx(t, "EBITDAMargin", EBITDAMargin(625000, 2500000), 25, 1e-9)
	approx(t, "CashConversion", CashConversion(125000, 625000), 20, 1e-9)
	approx(t, "RevenueEfficiency", RevenueEfficiency(2500000, 400000), 6.25, 1e-9)
	approx(t, "IncomeReplacement", IncomeReplacement(80000, 100000), 80, 1e-9)
	approx(t, "DebtToEBITDA", DebtToEBITDA(2373000, 625000), 3.7968, 1e-4)
	approx(t, "BusinessROA", BusinessROA(150000, 3000000), 5, 1e-9)
}

func TestRatioMetricsZeroDenominators(t *testing.T) {
	if DSCR(625000, 0) != 0 {
		t.Error("zero debt service must not produce Inf")
	}
	if CashOnCash(60000, 0) != 0 || LeverageMultiplier(1, 0) != 0 {
		t.Error("zero investment must not produce Inf")
	}
	if RiskAdjustedReturn(20, 4.5, 0) != 0 {
		t.Error("zero risk score must not divide")
	}
}

func TestRiskAdjustedReturn(t *testing.T) {
	approx(t, "RiskAdjustedReturn", RiskAdjustedReturn(18.5, 4.5, 7), 2.0, 1e-9)
}

func TestRiskScore(t *testing.T) {
	cases := []struct {
		name            string
		dscr, coc       float64
		sellerFinancing float64
		want            int
	}{
		{"strong everything", 1.8, 22, 0.20, 10},  // 5+2+2+1
		{"mid coverage", 1.3, 12, 0.10, 6},        // 5+1+0+0
		{"weak deal", 1.0, 8, 0, 2},               // 5-2-1
		{"seller alignment", 1.8, 22, 0.25, 10},   // capped at 10
		{"exact boundaries", 1.5, 20, 0.20, 10},   // >= comparisons
		{"coc dead zone", 1.5, 11, 0, 7},          // 10 <= coc < 15 leaves score alone
	}
	for _, tc := range cases {
		if got := RiskScore(tc.dscr, tc.coc, tc.sellerFinancing); got != tc.want {
			t.Errorf("%s: RiskScore = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRiskScoreClamped(t *testing.T) {
	for dscr := 0.0; dscr <= 3; dscr += 0.1 {
		for coc := -10.0; coc <= 40; coc += 2.5 {
			got := RiskScore(dscr, coc, 0.3)
			if got < riskScoreMin || got > riskScoreMax {
				t.Fatalf("RiskScore(%f, %f) = %d out of range", dscr, coc, got)
			}
		}
	}
}

func TestInterestCoverage(t *testing.T) {
	cv := InterestCoverage(625000, 250000)
	if cv.Infinite {
		t.Fatal("positive interest must not read as infinite")
	}
	approx(t, "coverage", cv.Value, 2.5, 1e-9)

	if !InterestCoverage(625000, 0).Infinite {
		t.Error("zero interest burden is infinite coverage, not zero")
	}
}

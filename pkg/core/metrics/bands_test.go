package metrics

import "testing"

func TestBandThresholdEdges(t *testing.T) {
	cases := []struct {
		name string
		fn   func(float64) Band
		v    float64
		want Band
	}{
		{"dscr below floor", DSCRBand, 1.24, BandCritical},
		{"dscr at floor", DSCRBand, 1.25, BandBelowTarget},
		{"dscr good", DSCRBand, 1.5, BandGood},
		{"dscr at ceiling", DSCRBand, 2.0, BandGood},
		{"dscr above ceiling", DSCRBand, 2.01, BandExcellent},

		{"coc critical", CashOnCashBand, 7.9, BandCritical},
		{"coc excellent", CashOnCashBand, 25, BandExcellent},

		{"utilization inverted critical", CapitalUtilizationBand, 96, BandCritical},
		{"utilization inverted good", CapitalUtilizationBand, 70, BandGood},
		{"utilization inverted excellent", CapitalUtilizationBand, 60, BandExcellent},

		{"price-to-revenue inverted", PriceToRevenueBand, 1.3, BandCritical},
		{"price-to-revenue cheap", PriceToRevenueBand, 0.7, BandExcellent},

		{"growth capacity dollars", GrowthCapacityBand, 120000, BandGood},
		{"income replacement full", IncomeReplacementBand, 125, BandExcellent},
	}
	for _, tc := range cases {
		if got := tc.fn(tc.v); got != tc.want {
			t.Errorf("%s: band(%v) = %s, want %s", tc.name, tc.v, got, tc.want)
		}
	}
}

// Banding must be monotone: for higher-is-better metrics a larger value never
// lands in a worse band, and the inverse for the inverted metrics.
func TestBandMonotonicity(t *testing.T) {
	rank := map[Band]int{
		BandCritical:    0,
		BandBelowTarget: 1,
		BandGood:        2,
		BandExcellent:   3,
	}

	ascending := map[string]func(float64) Band{
		"dscr":               DSCRBand,
		"cash-on-cash":       CashOnCashBand,
		"leverage":           LeverageBand,
		"ebitda-margin":      EBITDAMarginBand,
		"cash-conversion":    CashConversionBand,
		"revenue-efficiency": RevenueEfficiencyBand,
		"risk-adjusted":      RiskAdjustedBand,
		"income-replacement": IncomeReplacementBand,
		"wealth-velocity":    WealthVelocityBand,
		"stress-roi":         StressTestBand,
		"growth-capacity":    GrowthCapacityBand,
	}
	descending := map[string]func(float64) Band{
		"capital-utilization": CapitalUtilizationBand,
		"price-to-revenue":    PriceToRevenueBand,
	}

	// Sweep a wide value grid; dollar-scale bands need the big end of it.
	grid := make([]float64, 0, 600)
	for v := -10.0; v <= 150; v += 0.25 {
		grid = append(grid, v)
	}
	for v := 1000.0; v <= 300000; v += 7500 {
		grid = append(grid, v)
	}

	for name, fn := range ascending {
		prev := -1
		for _, v := range grid {
			r := rank[fn(v)]
			if r < prev {
				t.Fatalf("%s: band degraded as value rose at %v", name, v)
			}
			prev = r
		}
	}
	for name, fn := range descending {
		prev := 99
		for _, v := range grid {
			r := rank[fn(v)]
			if r > prev {
				t.Fatalf("%s: band improved as value rose at %v", name, v)
			}
			prev = r
		}
	}
}

func TestBandLabels(t *testing.T) {
	if BandBelowTarget.Label() != "Below Target" {
		t.Errorf("label = %q", BandBelowTarget.Label())
	}
	if Band("weird").Label() != "weird" {
		t.Error("unknown band should fall back to its raw value")
	}
}

package metrics

import (
	"math"
	"testing"
)

func TestMOIC(t *testing.T) {
	flows := []float64{100000, 110000, 120000, 130000, 140000}
	// 600000 cumulative + 625000*4.2 terminal = 3225000 on 400000 invested.
	approx(t, "MOIC", MOIC(flows, 625000, 4.2, 400000), 8.0625, 1e-9)

	if MOIC(flows, 625000, 4.2, 0) != 0 {
		t.Error("zero investment must not produce Inf")
	}
}

func TestWealthVelocity(t *testing.T) {
	// 2x over 5 years is ~14.87% annualized.
	approx(t, "WealthVelocity", WealthVelocity(2, 5), 14.8698, 1e-3)

	if WealthVelocity(-1, 5) != 0 || WealthVelocity(2, 0) != 0 {
		t.Error("degenerate inputs must yield 0, not NaN")
	}
}

func TestPaybackInterpolation(t *testing.T) {
	flows := []float64{100000, 100000, 100000, 100000, 100000}

	// 250000 recovered halfway through year 3.
	p := PaybackPeriod(250000, flows)
	if !p.WithinHorizon {
		t.Fatal("payback should land within the horizon")
	}
	approx(t, "payback years", p.Years, 2.5, 1e-9)
}

func TestPaybackBeyondHorizon(t *testing.T) {
	p := PaybackPeriod(1000000, []float64{100000, 100000, 100000})
	if p.WithinHorizon {
		t.Fatal("unrecovered investment must be flagged, not reported as a year")
	}
	if p.Years != 3 {
		t.Errorf("beyond-horizon Years = %f, want horizon length", p.Years)
	}
}

func TestPaybackSkipsNegativeYears(t *testing.T) {
	// A loss year delays recovery and must not be treated as a crossing year.
	flows := []float64{100000, -50000, 100000, 100000}
	p := PaybackPeriod(200000, flows)
	if !p.WithinHorizon {
		t.Fatal("recovery happens in year 4")
	}
	approx(t, "payback years", p.Years, 3.5, 1e-9)
}

func TestPaybackZeroInvestment(t *testing.T) {
	p := PaybackPeriod(0, []float64{100000})
	if !p.WithinHorizon || p.Years != 0 {
		t.Errorf("nothing invested pays back immediately, got %+v", p)
	}
}

func TestExitValueRange(t *testing.T) {
	r := ExitValueRange(900000, 0.8)
	approx(t, "conservative", r.Conservative, 900000*3.0*0.8, 0.01)
	approx(t, "expected", r.Expected, 900000*3.59*0.8, 0.01)
	approx(t, "optimistic", r.Optimistic, 900000*4.5*0.8, 0.01)

	if !(r.Conservative < r.Expected && r.Expected < r.Optimistic) {
		t.Error("exit range must be ordered")
	}
}

func TestStressROI(t *testing.T) {
	r := StressROI(20)
	approx(t, "revenue drop", r.RevenueDrop, 16, 1e-9)
	approx(t, "margin compression", r.MarginCompression, 19.4, 1e-9)
	approx(t, "rate increase", r.RateIncrease, 19.6, 1e-9)
	approx(t, "min", r.MinROI, 16, 1e-9)

	// The revenue shock dominates for any positive base.
	if neg := StressROI(-10); neg.MinROI != -10*0.8 {
		t.Errorf("negative base min = %f", neg.MinROI)
	}
}

func TestGrowthFundingCapacity(t *testing.T) {
	// Headroom binds: 3*625000 - 1800000 = 75000 vs 150000*7.5 serviceable.
	approx(t, "headroom-bound", GrowthFundingCapacity(625000, 1800000, 150000, 7.5), 75000, 1e-9)

	// Cash flow binds.
	approx(t, "cashflow-bound", GrowthFundingCapacity(625000, 0, 100000, 5), 500000, 1e-9)

	// Over-levered business cannot raise negative capital.
	if GrowthFundingCapacity(625000, 3000000, 100000, 5) != 0 {
		t.Error("capacity must floor at zero")
	}
}

func TestNormalizeProbabilities(t *testing.T) {
	w := NormalizeProbabilities(OutcomeWeights{Best: 2, Likely: 5, Worst: 3})
	approx(t, "best", w.Best, 0.2, 1e-9)
	approx(t, "likely", w.Likely, 0.5, 1e-9)
	approx(t, "worst", w.Worst, 0.3, 1e-9)

	even := NormalizeProbabilities(OutcomeWeights{})
	if math.Abs(even.Best+even.Likely+even.Worst-1) > 1e-9 {
		t.Error("zero weights must normalize to an even split summing to 1")
	}
}

func TestExpectedValue(t *testing.T) {
	got := ExpectedValue(300000, 200000, 50000, OutcomeWeights{Best: 0.25, Likely: 0.5, Worst: 0.25})
	approx(t, "expected value", got, 300000*0.25+200000*0.5+50000*0.25, 1e-6)

	// Un-normalized weights are rescaled, not trusted.
	raw := ExpectedValue(100, 100, 100, OutcomeWeights{Best: 3, Likely: 3, Worst: 3})
	approx(t, "rescaled", raw, 100, 1e-9)
}

func TestDerivedTargets(t *testing.T) {
	tg := DerivedTargets(500000, 2500000)
	approx(t, "max price", tg.MaxSafePurchasePrice, 2000000, 1e-9)
	approx(t, "min EBITDA", tg.MinRequiredEBITDA, 2000000*0.12/1.25, 1e-9)
	approx(t, "revenue low", tg.RevenueLow, 2000000, 1e-9)
	approx(t, "revenue high", tg.RevenueHigh, 3000000, 1e-9)
	if tg.MultipleLow != 3.5 || tg.MultipleHigh != 5.0 {
		t.Errorf("multiple range = %f-%f", tg.MultipleLow, tg.MultipleHigh)
	}
}

package projection

import (
	"math"
	"testing"

	"acquisition_calc/pkg/core/deal"
	"acquisition_calc/pkg/core/funding"
)

func resolvedDeal(t *testing.T) (deal.Structure, deal.Financing, deal.Assumptions) {
	t.Helper()
	a := deal.DefaultAssumptions()
	s := deal.NewStructure(2500000, a)
	sources := funding.DefaultSources()
	alloc := funding.Allocate(s.DownPaymentNeeded, sources)
	return s, deal.ResolveFinancing(s, alloc, sources, a), a
}

func TestComputeCashFlow(t *testing.T) {
	s, fin, a := resolvedDeal(t)

	cf := Compute(s, fin, 1.0, a)

	wantFCF := s.EBITDA - fin.Business.Total - a.ManagementSalary - a.TechInvestment/3
	if math.Abs(cf.BusinessFreeCashFlow-wantFCF) > 0.01 {
		t.Errorf("BusinessFreeCashFlow = %f, want %f", cf.BusinessFreeCashFlow, wantFCF)
	}
	if math.Abs(cf.OwnerDistribution-wantFCF) > 0.01 {
		t.Errorf("full ownership: distribution = %f, want %f", cf.OwnerDistribution, wantFCF)
	}
	if math.Abs(cf.PersonalNetCashFlow-(wantFCF-fin.Personal.Total)) > 0.01 {
		t.Errorf("PersonalNetCashFlow = %f", cf.PersonalNetCashFlow)
	}
}

func TestProjectCompounding(t *testing.T) {
	s, fin, a := resolvedDeal(t) // 8% growth

	years := Project(s, fin, 0.8, a)
	if len(years) != 5 {
		t.Fatalf("horizon = %d, want 5", len(years))
	}

	// Year-3 revenue = base * 1.08^2 exactly (within float tolerance).
	want := 2500000 * 1.08 * 1.08
	if math.Abs(years[2].Revenue-want) > 1e-6 {
		t.Errorf("year-3 revenue = %f, want %f", years[2].Revenue, want)
	}

	// EBITDA tracks the year's revenue at the assumed margin.
	if math.Abs(years[4].EBITDA-years[4].Revenue*0.25) > 1e-6 {
		t.Errorf("year-5 EBITDA = %f, want %f", years[4].EBITDA, years[4].Revenue*0.25)
	}
}

func TestProjectTechAmortizationWindow(t *testing.T) {
	s, fin, a := resolvedDeal(t)
	a.RevenueGrowthRate = 0 // isolate the tech add-back

	years := Project(s, fin, 1.0, a)

	// Years 1-3 carry tech amortization, year 4 onward does not. With flat
	// revenue the only difference between year 3 and year 4 is that add-back.
	diff := years[3].BusinessCashFlow - years[2].BusinessCashFlow
	if math.Abs(diff-a.TechInvestment/3) > 0.01 {
		t.Errorf("year 4 should shed tech amortization of %f, diff was %f", a.TechInvestment/3, diff)
	}
	if math.Abs(years[4].BusinessCashFlow-years[3].BusinessCashFlow) > 0.01 {
		t.Error("years 4 and 5 should be identical with zero growth")
	}
}

func TestProjectCumulative(t *testing.T) {
	s, fin, a := resolvedDeal(t)
	years := Project(s, fin, 0.9, a)

	var running float64
	for _, y := range years {
		running += y.PersonalCashFlow
		if math.Abs(y.CumulativePersonal-running) > 0.01 {
			t.Errorf("year %d cumulative = %f, want %f", y.Year, y.CumulativePersonal, running)
		}
	}
}

func TestProjectDebtServiceConstant(t *testing.T) {
	s, fin, a := resolvedDeal(t)
	years := Project(s, fin, 1.0, a)

	// Back out the deducted debt service per year; it must not drift.
	for _, y := range years[3:] { // after the tech window
		implied := y.EBITDA - y.BusinessCashFlow - a.ManagementSalary
		if math.Abs(implied-fin.Business.Total) > 0.01 {
			t.Errorf("year %d implied debt service %f, want %f", y.Year, implied, fin.Business.Total)
		}
	}
}

package deal

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func TestNewStructureSeedScenario(t *testing.T) {
	// Seed deal: $2.5M revenue, 25% margin, 4.2x multiple, 20% seller note,
	// 12% SBA down, 12% working capital.
	a := DefaultAssumptions()
	s := NewStructure(2500000, a)

	approx(t, "EBITDA", s.EBITDA, 625000)
	approx(t, "PurchasePrice", s.PurchasePrice, 2625000)
	approx(t, "SellerFinancingAmount", s.SellerFinancingAmount, 525000)
	approx(t, "SBALoanAmount", s.SBALoanAmount, 2100000)
	approx(t, "SBADownPayment", s.SBADownPayment, 252000)
	approx(t, "WorkingCapital", s.WorkingCapital, 300000)
	approx(t, "Fees", s.Fees, 65625)
	approx(t, "DownPaymentNeeded", s.DownPaymentNeeded, 617625)
}

func TestNewStructureSBADownPaymentFloor(t *testing.T) {
	a := DefaultAssumptions()
	a.SBADownPayment = 0.08 // below the regulatory 10% minimum

	s := NewStructure(2500000, a)
	approx(t, "SBADownPayment floored", s.SBADownPayment, 2100000*0.10)
}

func TestNewStructureDegenerateRevenue(t *testing.T) {
	// Degenerate inputs propagate, they do not panic or error.
	s := NewStructure(0, DefaultAssumptions())
	if s.EBITDA != 0 || s.PurchasePrice != 0 || s.DownPaymentNeeded != 0 {
		t.Errorf("zero revenue should derive zero deal, got %+v", s)
	}

	s = NewStructure(-100000, DefaultAssumptions())
	if s.EBITDA >= 0 {
		t.Errorf("negative revenue should derive negative EBITDA, got %f", s.EBITDA)
	}
}

func TestCapitalInvested(t *testing.T) {
	a := DefaultAssumptions()
	s := NewStructure(2500000, a)
	want := s.PurchasePrice + s.WorkingCapital + s.PurchasePrice*DueDiligenceRate + s.PurchasePrice*ProfessionalFeesRate
	approx(t, "CapitalInvested", s.CapitalInvested(), want)
}

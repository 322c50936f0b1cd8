package deal

import (
	"acquisition_calc/pkg/core/finance"
	"acquisition_calc/pkg/core/funding"
)

// BusinessDebtService is the annual obligation carried by the acquired
// business: SBA note plus seller note.
type BusinessDebtService struct {
	SBAAnnualPayment    float64 `json:"sba_annual_payment"`
	SellerAnnualPayment float64 `json:"seller_annual_payment"`
	Total               float64 `json:"total"`
}

// PersonalDebtService is the annual obligation the buyer services personally
// for capital drawn from personal-debt sources.
type PersonalDebtService struct {
	ByKind map[funding.Kind]float64 `json:"by_kind"`
	Total  float64                  `json:"total"`
}

// Financing resolves how the purchase price is carried once the cash
// allocation is known.
type Financing struct {
	// SBAPrincipal is the bank-financed portion net of the down payment,
	// floored at zero.
	SBAPrincipal    float64 `json:"sba_principal"`
	SellerPrincipal float64 `json:"seller_principal"`

	Business BusinessDebtService `json:"business_debt_service"`
	Personal PersonalDebtService `json:"personal_debt_service"`

	// Shortfall carries over any unmet cash requirement from the allocation.
	// It is reported for the caller to flag; debt service below is computed
	// from whatever was actually allocated.
	Shortfall float64 `json:"shortfall"`
}

// ResolveFinancing combines the deal structure with the cash allocation into
// principal balances and annual debt service. Personal debt is amortized at
// the source's effective terms, so a quoted rate or term on a Source takes
// precedence over its kind profile.
func ResolveFinancing(s Structure, alloc funding.Allocation, sources funding.SourceSet, a Assumptions) Financing {
	sbaPrincipal := s.SBALoanAmount - s.SBADownPayment
	if sbaPrincipal < 0 {
		sbaPrincipal = 0
	}

	business := BusinessDebtService{
		SBAAnnualPayment:    finance.AnnualPayment(sbaPrincipal, a.SBAInterestRate, a.SBATermYears),
		SellerAnnualPayment: finance.AnnualPayment(s.SellerFinancingAmount, a.SellerInterestRate, a.SellerTermYears),
	}
	business.Total = business.SBAAnnualPayment + business.SellerAnnualPayment

	personal := PersonalDebtService{ByKind: make(map[funding.Kind]float64)}
	for kind, amount := range alloc.ByKind {
		profile := funding.ProfileFor(kind)
		if !profile.Personal || profile.Class != funding.ClassDebt || amount <= 0 {
			continue
		}
		rate, term := profile.Rate, profile.TermYears
		if src, ok := sources[kind]; ok {
			// Map keys are authoritative; a hand-built Source may omit Kind.
			src.Kind = kind
			rate, term = src.EffectiveRate(), src.EffectiveTerm()
		}
		payment := finance.AnnualPayment(amount, rate, term)
		personal.ByKind[kind] = payment
		personal.Total += payment
	}

	return Financing{
		SBAPrincipal:    sbaPrincipal,
		SellerPrincipal: s.SellerFinancingAmount,
		Business:        business,
		Personal:        personal,
		Shortfall:       alloc.Shortfall,
	}
}

// TotalBusinessDebt is the principal carried by the business at origination.
func (f Financing) TotalBusinessDebt() float64 {
	return f.SBAPrincipal + f.SellerPrincipal
}

// Package deal derives the acquisition structure — purchase price, financing
// split and cash requirement — from the user's assumptions.
//
// Convention: every rate and percentage in Assumptions is a decimal fraction
// (0.25 means 25%). Conversion to display percent happens only at the
// presentation boundary.
package deal

// Fee rates as fractions of purchase price. The 2.5% aggregate closing fee is
// the sum of due diligence and professional fees plus a small contingency
// remainder; EVA's capital base charges only the first two.
const (
	DueDiligenceRate     = 0.015
	ProfessionalFeesRate = 0.008
	AggregateFeeRate     = 0.025

	// SBAMinimumDownPayment is the regulatory floor applied regardless of the
	// configured percentage (June 2025 SBA rules).
	SBAMinimumDownPayment = 0.10
)

// Assumptions is the flat record of user-adjustable model drivers.
type Assumptions struct {
	NetProfitMargin   float64 `json:"net_profit_margin" yaml:"net_profit_margin"`
	ValuationMultiple float64 `json:"valuation_multiple" yaml:"valuation_multiple"`
	SellerFinancing   float64 `json:"seller_financing" yaml:"seller_financing"`
	RevenueGrowthRate float64 `json:"revenue_growth_rate" yaml:"revenue_growth_rate"`
	WorkingCapital    float64 `json:"working_capital" yaml:"working_capital"`
	SBADownPayment    float64 `json:"sba_down_payment" yaml:"sba_down_payment"`

	SBAInterestRate    float64 `json:"sba_interest_rate" yaml:"sba_interest_rate"`
	SBATermYears       int     `json:"sba_term_years" yaml:"sba_term_years"`
	SellerInterestRate float64 `json:"seller_interest_rate" yaml:"seller_interest_rate"`
	SellerTermYears    int     `json:"seller_term_years" yaml:"seller_term_years"`

	ManagementSalary float64 `json:"management_salary" yaml:"management_salary"`
	TechInvestment   float64 `json:"tech_investment" yaml:"tech_investment"`
	CurrentSalary    float64 `json:"current_salary" yaml:"current_salary"`

	TaxRate          float64 `json:"tax_rate" yaml:"tax_rate"`
	EquityCost       float64 `json:"equity_cost" yaml:"equity_cost"`
	SweatEquityValue float64 `json:"sweat_equity_value" yaml:"sweat_equity_value"`
	RiskFreeRate     float64 `json:"risk_free_rate" yaml:"risk_free_rate"`

	ExitMultiple     float64 `json:"exit_multiple" yaml:"exit_multiple"`
	ProjectionYears  int     `json:"projection_years" yaml:"projection_years"`
	TechAmortYears   int     `json:"tech_amort_years" yaml:"tech_amort_years"`
}

// DefaultAssumptions is the single canonical default table. The original model
// scattered divergent fallbacks per call site (working capital 0.12 vs 0.079
// vs 0.146); this table supersedes all of them.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		NetProfitMargin:   0.25,
		ValuationMultiple: 4.2,
		SellerFinancing:   0.20,
		RevenueGrowthRate: 0.08,
		WorkingCapital:    0.12,
		SBADownPayment:    0.12,

		SBAInterestRate:    0.115,
		SBATermYears:       10,
		SellerInterestRate: 0.08,
		SellerTermYears:    5,

		ManagementSalary: 100000,
		TechInvestment:   100000,
		CurrentSalary:    100000,

		TaxRate:          0.25,
		EquityCost:       0.15,
		SweatEquityValue: 150000,
		RiskFreeRate:     0.045,

		ExitMultiple:    4.2,
		ProjectionYears: 5,
		TechAmortYears:  3,
	}
}

// Structure is the derived deal shape for one target revenue. Immutable once
// computed.
type Structure struct {
	TargetRevenue float64 `json:"target_revenue"`
	EBITDA        float64 `json:"ebitda"`
	PurchasePrice float64 `json:"purchase_price"`

	SellerFinancingAmount float64 `json:"seller_financing_amount"`
	// SBALoanAmount is the pre-down-payment bank-financed portion.
	SBALoanAmount  float64 `json:"sba_loan_amount"`
	SBADownPayment float64 `json:"sba_down_payment"`

	WorkingCapital   float64 `json:"working_capital"`
	DueDiligence     float64 `json:"due_diligence"`
	ProfessionalFees float64 `json:"professional_fees"`
	Fees             float64 `json:"fees"`

	// DownPaymentNeeded is the total cash requirement: SBA down payment +
	// working capital + closing fees.
	DownPaymentNeeded float64 `json:"down_payment_needed"`
}

// NewStructure derives the deal structure. Degenerate inputs (zero or negative
// revenue) propagate into degenerate outputs; validation is a separate pass.
func NewStructure(targetRevenue float64, a Assumptions) Structure {
	ebitda := targetRevenue * a.NetProfitMargin
	price := ebitda * a.ValuationMultiple

	sellerAmount := price * a.SellerFinancing
	sbaBase := price - sellerAmount

	downPct := a.SBADownPayment
	if downPct < SBAMinimumDownPayment {
		downPct = SBAMinimumDownPayment
	}
	sbaDown := sbaBase * downPct

	workingCapital := targetRevenue * a.WorkingCapital
	fees := price * AggregateFeeRate

	return Structure{
		TargetRevenue:         targetRevenue,
		EBITDA:                ebitda,
		PurchasePrice:         price,
		SellerFinancingAmount: sellerAmount,
		SBALoanAmount:         sbaBase,
		SBADownPayment:        sbaDown,
		WorkingCapital:        workingCapital,
		DueDiligence:          price * DueDiligenceRate,
		ProfessionalFees:      price * ProfessionalFeesRate,
		Fees:                  fees,
		DownPaymentNeeded:     sbaDown + workingCapital + fees,
	}
}

// CapitalInvested is the EVA capital base: price, working capital and the
// directly capitalizable fees.
func (s Structure) CapitalInvested() float64 {
	return s.PurchasePrice + s.WorkingCapital + s.DueDiligence + s.ProfessionalFees
}

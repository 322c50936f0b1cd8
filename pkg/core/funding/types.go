// Package funding defines the capital sources available to the buyer and the
// priority-ordered allocation that covers the cash requirement of a deal.
package funding

// Kind is a tagged variant for funding-source behavior. Every kind carries its
// own static cost, term and risk treatment so downstream modules never branch
// on display names.
type Kind string

const (
	// KindPersonalLoan is a low-rate personally guaranteed loan
	// (the original model's overseas family loan).
	KindPersonalLoan Kind = "personal_loan"
	// KindPersonalCash is the buyer's own cash, priced at opportunity cost.
	KindPersonalCash Kind = "personal_cash"
	// KindOutsideEquity is third-party investor capital.
	KindOutsideEquity Kind = "outside_equity"
	// KindSellerNote is deferred-payment debt extended by the seller.
	KindSellerNote Kind = "seller_note"
	// KindHomeEquity is a personal collateralized credit line.
	KindHomeEquity Kind = "home_equity"
	// KindSBALoan is the government-guaranteed acquisition loan. It is the
	// most expensive source and the capacity-unlimited lender of last resort.
	KindSBALoan Kind = "sba_loan"
)

// Class splits sources into debt and equity for WACC and ownership math.
type Class int

const (
	ClassDebt Class = iota
	ClassEquity
)

// Profile holds the static financial treatment of a source kind.
type Profile struct {
	Rate      float64 // nominal annual rate (decimal fraction)
	TermYears int     // amortization term; 0 for equity
	Class     Class
	Personal  bool    // true if the obligation sits with the buyer, not the business
	// RiskWeight scales the source's contribution in the ownership split.
	// Personal guarantees weigh below 1.0, collateralized personal assets
	// above 1.0, cash and outside equity at exactly 1.0.
	RiskWeight float64
	// TaxShield multiplies the nominal rate into an after-tax cost for WACC.
	// 0.75 reflects full business deductibility at a 25% tax rate; 1.0 means
	// no shield.
	TaxShield float64
}

// profiles is the canonical treatment table. Rates and terms mirror 2025
// small-business market terms.
var profiles = map[Kind]Profile{
	KindPersonalLoan:  {Rate: 0.028, TermYears: 10, Class: ClassDebt, Personal: true, RiskWeight: 0.8, TaxShield: 0.75},
	KindPersonalCash:  {Rate: 0.08, TermYears: 0, Class: ClassEquity, Personal: true, RiskWeight: 1.0, TaxShield: 0.75},
	KindOutsideEquity: {Rate: 0.15, TermYears: 0, Class: ClassEquity, Personal: false, RiskWeight: 1.0, TaxShield: 1.0},
	KindSellerNote:    {Rate: 0.08, TermYears: 5, Class: ClassDebt, Personal: false, RiskWeight: 0, TaxShield: 0.75},
	KindHomeEquity:    {Rate: 0.08, TermYears: 15, Class: ClassDebt, Personal: true, RiskWeight: 1.2, TaxShield: 1.0},
	KindSBALoan:       {Rate: 0.115, TermYears: 10, Class: ClassDebt, Personal: false, RiskWeight: 0, TaxShield: 0.75},
}

// ProfileFor returns the static treatment for a kind.
func ProfileFor(kind Kind) Profile {
	return profiles[kind]
}

// Source is one user-configurable funding instrument.
type Source struct {
	Kind    Kind    `json:"kind"`
	Amount  float64 `json:"amount"` // available capacity
	Enabled bool    `json:"enabled"`
	// Rate and TermYears override the kind profile when non-zero, so users
	// can tune a quoted rate without redefining the instrument.
	Rate      float64 `json:"rate,omitempty"`
	TermYears int     `json:"term_years,omitempty"`
}

// EffectiveRate returns the user override or the profile rate.
func (s Source) EffectiveRate() float64 {
	if s.Rate > 0 {
		return s.Rate
	}
	return profiles[s.Kind].Rate
}

// EffectiveTerm returns the user override or the profile term.
func (s Source) EffectiveTerm() int {
	if s.TermYears > 0 {
		return s.TermYears
	}
	return profiles[s.Kind].TermYears
}

// SourceSet maps kind to source configuration.
type SourceSet map[Kind]Source

// DefaultSources mirrors the original model's canonical funding mix.
func DefaultSources() SourceSet {
	return SourceSet{
		KindPersonalLoan:  {Kind: KindPersonalLoan, Amount: 300000, Enabled: true},
		KindPersonalCash:  {Kind: KindPersonalCash, Amount: 50000, Enabled: true},
		KindOutsideEquity: {Kind: KindOutsideEquity, Amount: 50000, Enabled: true},
		KindSellerNote:    {Kind: KindSellerNote, Amount: 0, Enabled: false},
		KindHomeEquity:    {Kind: KindHomeEquity, Amount: 98273, Enabled: true},
		KindSBALoan:       {Kind: KindSBALoan, Amount: 0, Enabled: true},
	}
}

// AvailableCash sums the enabled capacity of every source except the SBA
// backstop, whose capacity is notional.
func (ss SourceSet) AvailableCash() float64 {
	var total float64
	for kind, src := range ss {
		if kind == KindSBALoan || !src.Enabled {
			continue
		}
		total += src.Amount
	}
	return total
}

package funding

// PriorityOrder is the fixed fill order for covering the cash requirement,
// cheapest after-tax cost first. This is a cost-minimization policy, not a
// bin-packing optimum: the order is part of the model's contract and must not
// be re-derived from rates at runtime.
var PriorityOrder = []Kind{
	KindPersonalLoan,
	KindPersonalCash,
	KindOutsideEquity,
	KindSellerNote,
	KindHomeEquity,
	KindSBALoan,
}

// Allocation is the outcome of filling a cash requirement from the source set.
type Allocation struct {
	// ByKind holds the amount drawn from each source. Every kind in
	// PriorityOrder is present, disabled or unused sources at 0.
	ByKind map[Kind]float64 `json:"by_kind"`
	// TotalAllocated + Shortfall always equals the requested amount.
	TotalAllocated float64 `json:"total_allocated"`
	Shortfall      float64 `json:"shortfall"`
	AmountNeeded   float64 `json:"amount_needed"`
}

// Amount returns the allocation drawn from one kind.
func (a Allocation) Amount(kind Kind) float64 {
	return a.ByKind[kind]
}

// PersonalInvested sums the buyer-side capital in the allocation: personal
// cash plus personally serviced debt.
func (a Allocation) PersonalInvested() float64 {
	var total float64
	for kind, amount := range a.ByKind {
		if profiles[kind].Personal {
			total += amount
		}
	}
	return total
}

// Allocate fills amountNeeded from the sources in PriorityOrder. Each enabled
// source contributes min(remaining, capacity); the SBA loan at the end of the
// order absorbs any remainder without a capacity ceiling, so a shortfall can
// only arise when the SBA source is explicitly disabled.
func Allocate(amountNeeded float64, sources SourceSet) Allocation {
	alloc := Allocation{
		ByKind:       make(map[Kind]float64, len(PriorityOrder)),
		AmountNeeded: amountNeeded,
	}
	for _, kind := range PriorityOrder {
		alloc.ByKind[kind] = 0
	}
	if amountNeeded <= 0 {
		return alloc
	}

	remaining := amountNeeded
	for _, kind := range PriorityOrder {
		if remaining <= 0 {
			break
		}
		src, ok := sources[kind]
		if !ok || !src.Enabled {
			continue
		}

		used := src.Amount
		if kind == KindSBALoan {
			// Backstop: take whatever is left regardless of capacity.
			used = remaining
		} else if used > remaining {
			used = remaining
		}
		if used <= 0 {
			continue
		}

		alloc.ByKind[kind] = used
		remaining -= used
	}

	alloc.Shortfall = remaining
	alloc.TotalAllocated = amountNeeded - remaining
	return alloc
}

// Package pricing derives quote totals from their monetary components.
//
// All arithmetic is exact: amounts are centavos (int64), so drafts and
// persisted quotes produce identical results with no float drift. The same
// functions serve an in-progress draft and a stored quote being recomputed
// after an edit; there is no branching on persistence state.
package pricing

import "marcenaria_rampanelli/internal/domain/entities"

// Breakdown carries the intermediate subtotals alongside the grand total.
type Breakdown struct {
	LineItemsSubtotal  int64 `json:"line_items_subtotal"`
	LaborFee           int64 `json:"labor_fee"`
	ExtraCostsSubtotal int64 `json:"extra_costs_subtotal"`
	Total              int64 `json:"total"`
}

// LineItemsSubtotal sums unit price times quantity over all line items.
// Items with quantity zero contribute nothing.
func LineItemsSubtotal(items []entities.LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Total()
	}
	return total
}

// ExtraCostsSubtotal sums the amounts of all extra costs.
func ExtraCostsSubtotal(costs []entities.ExtraCost) int64 {
	var total int64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}

// Total computes the grand total: line items + labor fee + extra costs.
func Total(items []entities.LineItem, laborFee int64, costs []entities.ExtraCost) int64 {
	return LineItemsSubtotal(items) + laborFee + ExtraCostsSubtotal(costs)
}

// Compute returns the full breakdown for the given components.
func Compute(items []entities.LineItem, laborFee int64, costs []entities.ExtraCost) Breakdown {
	b := Breakdown{
		LineItemsSubtotal:  LineItemsSubtotal(items),
		LaborFee:           laborFee,
		ExtraCostsSubtotal: ExtraCostsSubtotal(costs),
	}
	b.Total = b.LineItemsSubtotal + b.LaborFee + b.ExtraCostsSubtotal
	return b
}

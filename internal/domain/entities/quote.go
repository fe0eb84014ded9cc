package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Any status may be set to any other status, including itself. There are
//     no forbidden transitions and no side effects on a transition; moving to
//     "concluido" does not lock the record against further edits.
type QuoteStatus string

const (
	QuoteStatusPendente    QuoteStatus = "pendente"
	QuoteStatusAprovado    QuoteStatus = "aprovado"
	QuoteStatusRejeitado   QuoteStatus = "rejeitado"
	QuoteStatusEmAndamento QuoteStatus = "em_andamento"
	QuoteStatusConcluido   QuoteStatus = "concluido"
)

// AllQuoteStatuses lists every accepted status value.
var AllQuoteStatuses = []QuoteStatus{
	QuoteStatusPendente,
	QuoteStatusAprovado,
	QuoteStatusRejeitado,
	QuoteStatusEmAndamento,
	QuoteStatusConcluido,
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPendente, QuoteStatusAprovado, QuoteStatusRejeitado,
		QuoteStatusEmAndamento, QuoteStatusConcluido:
		return true
	}
	return false
}

// Label returns the display name for the status. Values outside the known set
// render as "Desconhecido" rather than failing.
func (s QuoteStatus) Label() string {
	switch s {
	case QuoteStatusPendente:
		return "Pendente"
	case QuoteStatusAprovado:
		return "Aprovado"
	case QuoteStatusRejeitado:
		return "Rejeitado"
	case QuoteStatusEmAndamento:
		return "Em andamento"
	case QuoteStatusConcluido:
		return "Concluído"
	default:
		return "Desconhecido"
	}
}

// LineItem is a catalog material snapshotted into a quote at selection time.
// A later catalog price change never alters stored quotes; the id only ties
// the snapshot back to its origin for display and is not required to still
// exist in the catalog.
type LineItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Total returns unit price times quantity, in centavos.
func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// ExtraCost is an ad-hoc charge not drawn from the material catalog
// (e.g. delivery). Insertion order is preserved; removal is by index.
type ExtraCost struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// DefaultQuoteNotes is the payment-terms boilerplate applied when the
// operator leaves the notes field unset.
const DefaultQuoteNotes = "Metade na assinatura do contrato, metade na entrega. Prazo de entrega em 15 dias úteis."

// Quote is the central persisted entity.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - All amounts are in centavos (int64). Formatting to "R$ x,yy" is a
//     presentation concern of the document renderer only.
//   - TotalAmount is derived and stored redundantly for fast display; it must
//     always equal line items + labor fee + extra costs at write time.
type Quote struct {
	ID                 string      `json:"id"`
	CustomerName       string      `json:"customer_name"`
	CustomerPhone      string      `json:"customer_phone"`
	CustomerEmail      string      `json:"customer_email"`
	ProjectDescription string      `json:"project_description"`
	LineItems          []LineItem  `json:"line_items"`
	LaborFee           int64       `json:"labor_fee"`
	ExtraCosts         []ExtraCost `json:"extra_costs"`
	Notes              string      `json:"notes"`
	TotalAmount        int64       `json:"total_amount"`
	Status             QuoteStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

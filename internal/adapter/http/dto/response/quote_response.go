package response

import (
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/domain/pricing"
	"marcenaria_rampanelli/internal/usecase"
)

type LineItemResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`
}

type ExtraCostResponse struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type QuoteResponse struct {
	ID                 string              `json:"id"`
	CustomerName       string              `json:"customer_name"`
	CustomerPhone      string              `json:"customer_phone"`
	CustomerEmail      string              `json:"customer_email"`
	ProjectDescription string              `json:"project_description"`
	LineItems          []LineItemResponse  `json:"line_items"`
	LaborFee           int64               `json:"labor_fee"`
	ExtraCosts         []ExtraCostResponse `json:"extra_costs"`
	Notes              string              `json:"notes"`
	TotalAmount        int64               `json:"total_amount"`
	Status             string              `json:"status"`
	StatusLabel        string              `json:"status_label"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, LineItemResponse{
			ID:        li.ID,
			Name:      li.Name,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			Total:     li.Total(),
		})
	}

	costs := make([]ExtraCostResponse, 0, len(q.ExtraCosts))
	for _, c := range q.ExtraCosts {
		costs = append(costs, ExtraCostResponse{Description: c.Description, Amount: c.Amount})
	}

	return QuoteResponse{
		ID:                 q.ID,
		CustomerName:       q.CustomerName,
		CustomerPhone:      q.CustomerPhone,
		CustomerEmail:      q.CustomerEmail,
		ProjectDescription: q.ProjectDescription,
		LineItems:          items,
		LaborFee:           q.LaborFee,
		ExtraCosts:         costs,
		Notes:              q.Notes,
		TotalAmount:        q.TotalAmount,
		Status:             string(q.Status),
		StatusLabel:        q.Status.Label(),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// BreakdownResponse is the derived-totals payload for the draft preview.
type BreakdownResponse struct {
	LineItemsSubtotal  int64 `json:"line_items_subtotal"`
	LaborFee           int64 `json:"labor_fee"`
	ExtraCostsSubtotal int64 `json:"extra_costs_subtotal"`
	Total              int64 `json:"total"`
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		LineItemsSubtotal:  b.LineItemsSubtotal,
		LaborFee:           b.LaborFee,
		ExtraCostsSubtotal: b.ExtraCostsSubtotal,
		Total:              b.Total,
	}
}

// SummaryResponse is the dashboard aggregate payload.
type SummaryResponse struct {
	QuoteCount      int   `json:"quote_count"`
	TotalAmount     int64 `json:"total_amount"`
	TotalLabor      int64 `json:"total_labor"`
	AverageAmount   int64 `json:"average_amount"`
	DistinctClients int   `json:"distinct_clients"`
	PendingCount    int   `json:"pending_count"`
	ApprovedCount   int   `json:"approved_count"`
	RejectedCount   int   `json:"rejected_count"`
}

func FromSummary(s usecase.QuoteSummary) SummaryResponse {
	return SummaryResponse{
		QuoteCount:      s.QuoteCount,
		TotalAmount:     s.TotalAmount,
		TotalLabor:      s.TotalLabor,
		AverageAmount:   s.AverageAmount,
		DistinctClients: s.DistinctClients,
		PendingCount:    s.PendingCount,
		ApprovedCount:   s.ApprovedCount,
		RejectedCount:   s.RejectedCount,
	}
}

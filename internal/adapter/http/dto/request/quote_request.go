package request

import (
	"strings"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase"
)

type LineItemRequest struct {
	ID        int    `json:"id"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type ExtraCostRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount"`
}

// QuoteRequest is the payload for creating a quote and for the draft preview
// endpoint. Amounts are integer centavos.
type QuoteRequest struct {
	CustomerName       string             `json:"customer_name" binding:"required"`
	CustomerPhone      string             `json:"customer_phone"`
	CustomerEmail      string             `json:"customer_email"`
	ProjectDescription string             `json:"project_description"`
	LineItems          []LineItemRequest  `json:"line_items"`
	LaborFee           int64              `json:"labor_fee"`
	ExtraCosts         []ExtraCostRequest `json:"extra_costs"`
	Notes              string             `json:"notes"`
}

func (r QuoteRequest) ToDraft() usecase.QuoteDraft {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, entities.LineItem{
			ID:        li.ID,
			Name:      strings.TrimSpace(li.Name),
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
		})
	}

	costs := make([]entities.ExtraCost, 0, len(r.ExtraCosts))
	for _, c := range r.ExtraCosts {
		costs = append(costs, entities.ExtraCost{
			Description: strings.TrimSpace(c.Description),
			Amount:      c.Amount,
		})
	}

	return usecase.QuoteDraft{
		CustomerName:       strings.TrimSpace(r.CustomerName),
		CustomerPhone:      strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:      strings.TrimSpace(r.CustomerEmail),
		ProjectDescription: strings.TrimSpace(r.ProjectDescription),
		LineItems:          items,
		LaborFee:           r.LaborFee,
		ExtraCosts:         costs,
		Notes:              r.Notes,
	}
}

// QuoteUpdateRequest is a partial update; absent fields keep their stored
// value.
type QuoteUpdateRequest struct {
	CustomerName       *string             `json:"customer_name"`
	CustomerPhone      *string             `json:"customer_phone"`
	CustomerEmail      *string             `json:"customer_email"`
	ProjectDescription *string             `json:"project_description"`
	LineItems          *[]LineItemRequest  `json:"line_items"`
	LaborFee           *int64              `json:"labor_fee"`
	ExtraCosts         *[]ExtraCostRequest `json:"extra_costs"`
	Notes              *string             `json:"notes"`
	Status             *string             `json:"status"`
}

func (r QuoteUpdateRequest) ToPatch() usecase.QuotePatch {
	patch := usecase.QuotePatch{
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		ProjectDescription: r.ProjectDescription,
		LaborFee:           r.LaborFee,
		Notes:              r.Notes,
	}

	if r.LineItems != nil {
		items := make([]entities.LineItem, 0, len(*r.LineItems))
		for _, li := range *r.LineItems {
			items = append(items, entities.LineItem{
				ID:        li.ID,
				Name:      strings.TrimSpace(li.Name),
				UnitPrice: li.UnitPrice,
				Quantity:  li.Quantity,
			})
		}
		patch.LineItems = &items
	}

	if r.ExtraCosts != nil {
		costs := make([]entities.ExtraCost, 0, len(*r.ExtraCosts))
		for _, c := range *r.ExtraCosts {
			costs = append(costs, entities.ExtraCost{
				Description: strings.TrimSpace(c.Description),
				Amount:      c.Amount,
			})
		}
		patch.ExtraCosts = &costs
	}

	if r.Status != nil {
		status := entities.QuoteStatus(strings.TrimSpace(*r.Status))
		patch.Status = &status
	}

	return patch
}

// StatusRequest is the payload for the status transition endpoint.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

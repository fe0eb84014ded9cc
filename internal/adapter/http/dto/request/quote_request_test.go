package request

import (
	"testing"

	"marcenaria_rampanelli/internal/domain/entities"
)

func TestQuoteRequest_ToDraft(t *testing.T) {
	r := QuoteRequest{
		CustomerName:       "  João da Silva  ",
		CustomerPhone:      " (11) 99999-1234 ",
		CustomerEmail:      " joao@email.com ",
		ProjectDescription: " Armário de cozinha ",
		LineItems: []LineItemRequest{
			{ID: 1, Name: " Chapa MDF ", UnitPrice: 50000, Quantity: 2},
			{ID: 4, Name: "Dobradiça", UnitPrice: 890, Quantity: 0},
		},
		LaborFee:   30000,
		ExtraCosts: []ExtraCostRequest{{Description: " Frete ", Amount: 15000}},
		Notes:      "obs",
	}

	draft := r.ToDraft()
	if draft.CustomerName != "João da Silva" {
		t.Fatalf("expected trimmed name, got %q", draft.CustomerName)
	}
	if draft.CustomerPhone != "(11) 99999-1234" || draft.CustomerEmail != "joao@email.com" {
		t.Fatalf("expected trimmed contact fields, got %q / %q", draft.CustomerPhone, draft.CustomerEmail)
	}
	if len(draft.LineItems) != 2 {
		t.Fatalf("zero-quantity items are filtered later, not here; got %d items", len(draft.LineItems))
	}
	if draft.LineItems[0].Name != "Chapa MDF" {
		t.Fatalf("expected trimmed item name, got %q", draft.LineItems[0].Name)
	}
	if draft.LaborFee != 30000 {
		t.Fatalf("expected labor fee 30000, got %d", draft.LaborFee)
	}
	if len(draft.ExtraCosts) != 1 || draft.ExtraCosts[0].Description != "Frete" {
		t.Fatalf("unexpected extra costs: %+v", draft.ExtraCosts)
	}
}

func TestQuoteUpdateRequest_ToPatch(t *testing.T) {
	t.Run("empty request yields empty patch", func(t *testing.T) {
		patch := QuoteUpdateRequest{}.ToPatch()
		if patch.CustomerName != nil || patch.LineItems != nil || patch.LaborFee != nil ||
			patch.ExtraCosts != nil || patch.Status != nil || patch.Notes != nil {
			t.Fatalf("expected all-nil patch, got %+v", patch)
		}
	})

	t.Run("present fields are carried over", func(t *testing.T) {
		name := "Maria Oliveira"
		fee := int64(25000)
		status := " aprovado "
		items := []LineItemRequest{{ID: 2, Name: "Painel", UnitPrice: 42000, Quantity: 1}}

		patch := QuoteUpdateRequest{
			CustomerName: &name,
			LaborFee:     &fee,
			Status:       &status,
			LineItems:    &items,
		}.ToPatch()

		if patch.CustomerName == nil || *patch.CustomerName != "Maria Oliveira" {
			t.Fatalf("expected customer name in patch, got %+v", patch.CustomerName)
		}
		if patch.LaborFee == nil || *patch.LaborFee != 25000 {
			t.Fatalf("expected labor fee in patch, got %+v", patch.LaborFee)
		}
		if patch.Status == nil || *patch.Status != entities.QuoteStatusAprovado {
			t.Fatalf("expected trimmed status aprovado, got %+v", patch.Status)
		}
		if patch.LineItems == nil || len(*patch.LineItems) != 1 || (*patch.LineItems)[0].Name != "Painel" {
			t.Fatalf("expected line items in patch, got %+v", patch.LineItems)
		}
	})
}

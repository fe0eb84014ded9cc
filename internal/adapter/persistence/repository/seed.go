package repository

import (
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/domain/pricing"
)

// SeedMaterials is the starter catalog loaded on first run. Prices in
// centavos.
func SeedMaterials() []entities.Material {
	return []entities.Material{
		{ID: 1, Name: "Chapa MDF Branco 18mm (2,75x1,85m)", UnitPrice: 35000},
		{ID: 2, Name: "Chapa MDF Amadeirado 18mm (2,75x1,85m)", UnitPrice: 42000},
		{ID: 3, Name: "Fita de borda 22mm (rolo 50m)", UnitPrice: 4500},
		{ID: 4, Name: "Dobradiça caneco 35mm com amortecedor", UnitPrice: 890},
		{ID: 5, Name: "Corrediça telescópica 45cm", UnitPrice: 2590},
		{ID: 6, Name: "Puxador perfil alumínio (barra 3m)", UnitPrice: 6900},
		{ID: 7, Name: "Parafuso 4x40mm (cento)", UnitPrice: 1200},
		{ID: 8, Name: "Fundo de armário MDF 6mm (2,75x1,85m)", UnitPrice: 14900},
	}
}

// SeedQuotes returns the sample quotes loaded on first run so the dashboard
// is not empty on a fresh install.
func SeedQuotes() []entities.Quote {
	now := time.Now().UTC()

	armario := entities.Quote{
		ID:                 "6b1a1f6e-6f0a-4b6f-9a4e-0d2f3a7c9b01",
		CustomerName:       "João da Silva",
		CustomerPhone:      "(11) 99999-1234",
		CustomerEmail:      "joao.silva@email.com",
		ProjectDescription: "Armário de cozinha planejado em MDF branco, 4 portas com amortecedor",
		LineItems: []entities.LineItem{
			{ID: 1, Name: "Chapa MDF Branco 18mm (2,75x1,85m)", UnitPrice: 50000, Quantity: 2},
			{ID: 4, Name: "Dobradiça caneco 35mm com amortecedor", UnitPrice: 890, Quantity: 8},
		},
		LaborFee:   30000,
		ExtraCosts: []entities.ExtraCost{{Description: "Frete e instalação", Amount: 15000}},
		Notes:      entities.DefaultQuoteNotes,
		Status:     entities.QuoteStatusPendente,
		CreatedAt:  now.Add(-72 * time.Hour),
		UpdatedAt:  now.Add(-72 * time.Hour),
	}

	painel := entities.Quote{
		ID:                 "8c4d2b35-2e81-47a3-b1de-5f6a9c0e4d02",
		CustomerName:       "Maria Oliveira",
		CustomerPhone:      "(11) 98888-5678",
		CustomerEmail:      "maria@email.com",
		ProjectDescription: "Painel para TV com nichos em MDF amadeirado",
		LineItems: []entities.LineItem{
			{ID: 2, Name: "Chapa MDF Amadeirado 18mm (2,75x1,85m)", UnitPrice: 42000, Quantity: 1},
			{ID: 3, Name: "Fita de borda 22mm (rolo 50m)", UnitPrice: 4500, Quantity: 1},
		},
		LaborFee:   25000,
		ExtraCosts: []entities.ExtraCost{},
		Notes:      entities.DefaultQuoteNotes,
		Status:     entities.QuoteStatusAprovado,
		CreatedAt:  now.Add(-24 * time.Hour),
		UpdatedAt:  now.Add(-2 * time.Hour),
	}

	quotes := []entities.Quote{armario, painel}
	for i := range quotes {
		quotes[i].TotalAmount = pricing.Total(quotes[i].LineItems, quotes[i].LaborFee, quotes[i].ExtraCosts)
	}
	return quotes
}

// SeedClients builds the autocomplete directory from the stored quotes. The
// directory is in-memory only, so this runs at every startup.
func SeedClients(quotes []entities.Quote) []entities.Client {
	clients := make([]entities.Client, 0, len(quotes))
	seen := map[string]bool{}
	for _, q := range quotes {
		key := q.CustomerName + "|" + q.CustomerEmail
		if q.CustomerName == "" || seen[key] {
			continue
		}
		seen[key] = true
		clients = append(clients, entities.Client{
			ID:    q.ID,
			Name:  q.CustomerName,
			Email: q.CustomerEmail,
			Phone: q.CustomerPhone,
		})
	}
	return clients
}

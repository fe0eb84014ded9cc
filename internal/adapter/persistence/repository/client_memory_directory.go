package repository

import (
	"context"
	"strings"
	"sync"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"
)

// ClientMemoryDirectory keeps the customer directory in memory. The directory
// only feeds the autocomplete on the quote form, so losing it on restart is
// acceptable; it is re-seeded from the stored quotes at startup.
type ClientMemoryDirectory struct {
	mu      sync.RWMutex
	clients []entities.Client
}

var _ interfaces.IClientDirectory = (*ClientMemoryDirectory)(nil)

func NewClientMemoryDirectory(initial ...entities.Client) *ClientMemoryDirectory {
	d := &ClientMemoryDirectory{}
	d.clients = append(d.clients, initial...)
	return d
}

func (d *ClientMemoryDirectory) Search(_ context.Context, term string) ([]entities.Client, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []entities.Client{}, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	matches := []entities.Client{}
	for _, c := range d.clients {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (d *ClientMemoryDirectory) Add(_ context.Context, c entities.Client) (entities.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Same name and e-mail means the same person; keep one entry and
	// refresh the phone.
	for i, existing := range d.clients {
		if strings.EqualFold(existing.Name, c.Name) && strings.EqualFold(existing.Email, c.Email) {
			d.clients[i].Phone = c.Phone
			return d.clients[i], nil
		}
	}

	d.clients = append(d.clients, c)
	return c, nil
}

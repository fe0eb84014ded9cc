package usecase

import (
	"context"
	"fmt"
	"strings"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"
)

// IDocumentUseCase renders the two PDF renditions of a persisted quote.
type IDocumentUseCase interface {
	RenderInternal(ctx context.Context, quoteID string) ([]byte, string, error)
	RenderClient(ctx context.Context, quoteID string) ([]byte, string, error)
}

type DocumentUseCase struct {
	quotes   interfaces.IQuoteRepository
	renderer interfaces.IQuoteDocumentRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(quotes interfaces.IQuoteRepository, renderer interfaces.IQuoteDocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{quotes: quotes, renderer: renderer}
}

// RenderInternal returns the cost-revealing rendition plus a suggested
// download filename.
func (u *DocumentUseCase) RenderInternal(ctx context.Context, quoteID string) ([]byte, string, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}
	doc, err := u.renderer.RenderInternal(q)
	if err != nil {
		return nil, "", err
	}
	return doc, documentFilename("Orcamento_Interno", q.CustomerName), nil
}

// RenderClient returns the client-facing rendition plus a suggested download
// filename.
func (u *DocumentUseCase) RenderClient(ctx context.Context, quoteID string) ([]byte, string, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}
	doc, err := u.renderer.RenderClient(q)
	if err != nil {
		return nil, "", err
	}
	return doc, documentFilename("Orcamento", q.CustomerName), nil
}

func (u *DocumentUseCase) load(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func documentFilename(prefix, customerName string) string {
	name := strings.Join(strings.Fields(customerName), "_")
	if name == "" {
		name = "Cliente"
	}
	return fmt.Sprintf("%s_%s.pdf", prefix, name)
}

package interfaces

import (
	"context"

	"marcenaria_rampanelli/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mocks

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Conventions shared by all methods:
//   - "not found" is signaled by a zero-value entity and a nil error; the use
//     case layer maps it to its own sentinel.
//   - List preserves stored order and is stable across reads; presentation
//     sorting belongs to the caller.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)

	// SeedIfEmpty loads the built-in sample set when no quotes are stored
	// yet. First-run/demo convenience only; it must run before the service
	// answers reads.
	SeedIfEmpty(ctx context.Context, quotes []entities.Quote) error
}

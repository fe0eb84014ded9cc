package interfaces

import (
	"context"

	"marcenaria_rampanelli/internal/domain/entities"
)

//go:generate mockgen -source=client_directory_interface.go -destination=mocks/client_directory_mock.go -package=mocks

// IClientDirectory holds the known customers used for autocomplete on the
// quote form.
type IClientDirectory interface {
	// Search matches the term as a case-insensitive substring of name,
	// e-mail or phone. An empty term returns no results.
	Search(ctx context.Context, term string) ([]entities.Client, error)
	Add(ctx context.Context, c entities.Client) (entities.Client, error)
}

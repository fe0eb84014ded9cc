package interfaces

import (
	"context"

	"marcenaria_rampanelli/internal/domain/entities"
)

//go:generate mockgen -source=material_repository_interface.go -destination=mocks/material_repository_mock.go -package=mocks

// IMaterialRepository abstracts DynamoDB persistence for the material
// catalog. "Not found" follows the zero-value-and-nil-error convention.
type IMaterialRepository interface {
	List(ctx context.Context) ([]entities.Material, error)

	// Create assigns the id as max(existing ids)+1 (1 when the catalog is
	// empty) and appends the entry.
	Create(ctx context.Context, name string, unitPrice int64) (entities.Material, error)
	GetByID(ctx context.Context, id int) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id int) (bool, error)

	SeedIfEmpty(ctx context.Context, materials []entities.Material) error
}

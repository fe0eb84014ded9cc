package usecase

import (
	"context"
	"errors"
	"strings"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"
)

var (
	ErrMaterialNotFound     = errors.New("material not found")
	ErrInvalidMaterialName  = errors.New("invalid material name")
	ErrInvalidMaterialPrice = errors.New("invalid material price")
)

// MaterialPatch is a partial update for a catalog entry.
type MaterialPatch struct {
	Name      *string
	UnitPrice *int64
}

// IMaterialUseCase exposes the material catalog operations. Validation
// happens here, at the boundary; invalid input never reaches the repository.
// Duplicate names are permitted.
type IMaterialUseCase interface {
	List(ctx context.Context) ([]entities.Material, error)
	Add(ctx context.Context, name string, unitPrice int64) (entities.Material, error)
	Update(ctx context.Context, id int, patch MaterialPatch) (entities.Material, error)
	Remove(ctx context.Context, id int) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) Add(ctx context.Context, name string, unitPrice int64) (entities.Material, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}
	if unitPrice <= 0 {
		return entities.Material{}, ErrInvalidMaterialPrice
	}
	return u.repo.Create(ctx, name, unitPrice)
}

func (u *MaterialUseCase) Update(ctx context.Context, id int, patch MaterialPatch) (entities.Material, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == 0 {
		return entities.Material{}, ErrMaterialNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Material{}, ErrInvalidMaterialName
		}
		m.Name = name
	}
	if patch.UnitPrice != nil {
		if *patch.UnitPrice <= 0 {
			return entities.Material{}, ErrInvalidMaterialPrice
		}
		m.UnitPrice = *patch.UnitPrice
	}

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == 0 {
		return entities.Material{}, ErrMaterialNotFound
	}
	return updated, nil
}

func (u *MaterialUseCase) Remove(ctx context.Context, id int) error {
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMaterialNotFound
	}
	return nil
}

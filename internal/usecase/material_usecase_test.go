package usecase

import (
	"context"
	"errors"
	"testing"

	"marcenaria_rampanelli/internal/domain/entities"
	mock_interfaces "marcenaria_rampanelli/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaterialUseCase_Add(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewMaterialUseCase(nil)
		_, err := uc.Add(context.Background(), "   ", 1000)
		if !errors.Is(err, ErrInvalidMaterialName) {
			t.Fatalf("expected ErrInvalidMaterialName, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewMaterialUseCase(nil)
		for _, price := range []int64{0, -100} {
			_, err := uc.Add(context.Background(), "Chapa MDF", price)
			if !errors.Is(err, ErrInvalidMaterialPrice) {
				t.Fatalf("price %d: expected ErrInvalidMaterialPrice, got %v", price, err)
			}
		}
	})

	t.Run("success trims name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), "Chapa MDF branco 18mm", int64(35000)).
			Return(entities.Material{ID: 1, Name: "Chapa MDF branco 18mm", UnitPrice: 35000}, nil)

		m, err := uc.Add(context.Background(), " Chapa MDF branco 18mm ", 35000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != 1 {
			t.Fatalf("unexpected material: %+v", m)
		}
	})

	// Duplicate names are allowed; the use case adds no uniqueness check.
	t.Run("duplicate name allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), "Dobradiça", int64(890)).
			Return(entities.Material{ID: 7, Name: "Dobradiça", UnitPrice: 890}, nil)

		if _, err := uc.Add(context.Background(), "Dobradiça", 890); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaterialUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 99).Return(entities.Material{}, nil)

		_, err := uc.Update(context.Background(), 99, MaterialPatch{})
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 2).
			Return(entities.Material{ID: 2, Name: "Corrediça", UnitPrice: 2590}, nil)
		repo.EXPECT().Update(gomock.Any(), entities.Material{ID: 2, Name: "Corrediça", UnitPrice: 2990}).
			Return(entities.Material{ID: 2, Name: "Corrediça", UnitPrice: 2990}, nil)

		price := int64(2990)
		m, err := uc.Update(context.Background(), 2, MaterialPatch{UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name != "Corrediça" || m.UnitPrice != 2990 {
			t.Fatalf("unexpected material: %+v", m)
		}
	})

	t.Run("invalid new price rejected before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 2).
			Return(entities.Material{ID: 2, Name: "Corrediça", UnitPrice: 2590}, nil)

		price := int64(0)
		_, err := uc.Update(context.Background(), 2, MaterialPatch{UnitPrice: &price})
		if !errors.Is(err, ErrInvalidMaterialPrice) {
			t.Fatalf("expected ErrInvalidMaterialPrice, got %v", err)
		}
	})
}

func TestMaterialUseCase_Remove(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 42).Return(false, nil)

		if err := uc.Remove(context.Background(), 42); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 1).Return(true, nil)

		if err := uc.Remove(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

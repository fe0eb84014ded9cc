package usecase

import (
	"context"
	"errors"
	"testing"

	"marcenaria_rampanelli/internal/domain/entities"
	mock_interfaces "marcenaria_rampanelli/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_RenderInternal(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, _, err := uc.RenderInternal(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDocumentUseCase(quotes, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "nonexistent-id").Return(entities.Quote{}, nil)

		_, _, err := uc.RenderInternal(context.Background(), "nonexistent-id")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success with filename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(quotes, renderer)

		q := entities.Quote{ID: "q-1", CustomerName: "João da Silva"}
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		renderer.EXPECT().RenderInternal(q).Return([]byte("%PDF-1.4"), nil)

		doc, filename, err := uc.RenderInternal(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(doc) != "%PDF-1.4" {
			t.Fatalf("unexpected document bytes")
		}
		if filename != "Orcamento_Interno_João_da_Silva.pdf" {
			t.Fatalf("unexpected filename: %q", filename)
		}
	})
}

func TestDocumentUseCase_RenderClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	renderer := mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl)
	uc := NewDocumentUseCase(quotes, renderer)

	q := entities.Quote{ID: "q-1", CustomerName: "Maria Souza"}
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	renderer.EXPECT().RenderClient(q).Return([]byte("%PDF-1.4"), nil)

	_, filename, err := uc.RenderClient(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "Orcamento_Maria_Souza.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestDocumentUseCase_RendererFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	renderer := mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl)
	uc := NewDocumentUseCase(quotes, renderer)

	q := entities.Quote{ID: "q-1", CustomerName: "Maria Souza"}
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	renderer.EXPECT().RenderClient(q).Return(nil, errors.New("render failed"))

	_, _, err := uc.RenderClient(context.Background(), "q-1")
	if err == nil || err.Error() != "render failed" {
		t.Fatalf("expected render error, got %v", err)
	}
}

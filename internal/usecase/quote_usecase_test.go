package usecase

import (
	"context"
	"errors"
	"testing"

	"marcenaria_rampanelli/internal/domain/entities"
	mock_interfaces "marcenaria_rampanelli/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDraft() QuoteDraft {
	return QuoteDraft{
		CustomerName:       "João da Silva",
		CustomerPhone:      "11987654321",
		CustomerEmail:      "joao@exemplo.com",
		ProjectDescription: "Cozinha planejada",
		LineItems: []entities.LineItem{
			{ID: 1, Name: "MDF Sheet", UnitPrice: 50000, Quantity: 2},
			{ID: 2, Name: "Fita de borda", UnitPrice: 1200, Quantity: 0},
		},
		LaborFee: 30000,
		ExtraCosts: []entities.ExtraCost{
			{Description: "Delivery", Amount: 15000},
		},
	}
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing customer field", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		draft := validDraft()
		draft.CustomerName = "   "
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrMissingCustomer) {
			t.Fatalf("expected ErrMissingCustomer, got %v", err)
		}
	})

	t.Run("negative labor fee", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		draft := validDraft()
		draft.LaborFee = -1
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrInvalidLaborFee) {
			t.Fatalf("expected ErrInvalidLaborFee, got %v", err)
		}
	})

	t.Run("invalid extra cost", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		draft := validDraft()
		draft.ExtraCosts = []entities.ExtraCost{{Description: "", Amount: 1000}}
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrInvalidExtraCost) {
			t.Fatalf("expected ErrInvalidExtraCost, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		draft := validDraft()
		draft.LineItems = []entities.LineItem{{ID: 1, Name: "MDF", UnitPrice: 0, Quantity: 1}}
		_, err := uc.Create(context.Background(), draft)
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.Status != entities.QuoteStatusPendente {
					t.Fatalf("expected status pendente, got %q", q.Status)
				}
				if len(q.LineItems) != 1 || q.LineItems[0].ID != 1 {
					t.Fatalf("expected zero-quantity item filtered out: %+v", q.LineItems)
				}
				if q.TotalAmount != 2*50000+30000+15000 {
					t.Fatalf("unexpected total: %d", q.TotalAmount)
				}
				if q.Notes != entities.DefaultQuoteNotes {
					t.Fatalf("expected default notes, got %q", q.Notes)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalAmount != 145000 {
			t.Fatalf("expected 145000, got %d", q.TotalAmount)
		}
	})

	t.Run("nil extra costs normalized to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ExtraCosts == nil {
					t.Fatalf("expected extra costs normalized to empty slice")
				}
				if len(q.ExtraCosts) != 0 {
					t.Fatalf("expected no extra costs, got %+v", q.ExtraCosts)
				}
				return q, nil
			},
		)

		draft := validDraft()
		draft.ExtraCosts = nil
		if _, err := uc.Create(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "nonexistent-id").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "nonexistent-id")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func storedQuote() entities.Quote {
	return entities.Quote{
		ID:                 "q-1",
		CustomerName:       "João da Silva",
		CustomerPhone:      "11987654321",
		CustomerEmail:      "joao@exemplo.com",
		ProjectDescription: "Cozinha planejada",
		LineItems:          []entities.LineItem{{ID: 1, Name: "MDF Sheet", UnitPrice: 50000, Quantity: 2}},
		LaborFee:           30000,
		ExtraCosts:         []entities.ExtraCost{{Description: "Delivery", Amount: 15000}},
		Notes:              entities.DefaultQuoteNotes,
		TotalAmount:        145000,
		Status:             entities.QuoteStatusPendente,
	}
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "nonexistent-id").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), "nonexistent-id", QuotePatch{})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("labor fee change recomputes stored total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.LaborFee != 40000 {
					t.Fatalf("expected labor fee 40000, got %d", q.LaborFee)
				}
				if q.TotalAmount != 2*50000+40000+15000 {
					t.Fatalf("expected recomputed total, got %d", q.TotalAmount)
				}
				return q, nil
			},
		)

		labor := int64(40000)
		q, err := uc.Update(context.Background(), "q-1", QuotePatch{LaborFee: &labor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalAmount != 155000 {
			t.Fatalf("expected 155000, got %d", q.TotalAmount)
		}
	})

	t.Run("line items change filters zero quantity and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if len(q.LineItems) != 1 || q.LineItems[0].ID != 3 {
					t.Fatalf("unexpected line items: %+v", q.LineItems)
				}
				if q.TotalAmount != 3*10000+30000+15000 {
					t.Fatalf("expected recomputed total, got %d", q.TotalAmount)
				}
				return q, nil
			},
		)

		items := []entities.LineItem{
			{ID: 3, Name: "Painel", UnitPrice: 10000, Quantity: 3},
			{ID: 4, Name: "Puxador", UnitPrice: 2000, Quantity: 0},
		}
		if _, err := uc.Update(context.Background(), "q-1", QuotePatch{LineItems: &items}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank customer field rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		blank := "  "
		_, err := uc.Update(context.Background(), "q-1", QuotePatch{CustomerName: &blank})
		if !errors.Is(err, ErrMissingCustomer) {
			t.Fatalf("expected ErrMissingCustomer, got %v", err)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		bad := entities.QuoteStatus("cancelado")
		_, err := uc.Update(context.Background(), "q-1", QuotePatch{Status: &bad})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})
}

// Every (from, to) pair over the status set is allowed, including from == to.
func TestQuoteUseCase_SetStatusPermissive(t *testing.T) {
	for _, from := range entities.AllQuoteStatuses {
		for _, to := range entities.AllQuoteStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
				uc := NewQuoteUseCase(repo)

				stored := storedQuote()
				stored.Status = from
				repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, q entities.Quote) (entities.Quote, error) {
						if q.Status != to {
							t.Fatalf("expected status %q, got %q", to, q.Status)
						}
						return q, nil
					},
				)

				if _, err := uc.SetStatus(context.Background(), "q-1", to); err != nil {
					t.Fatalf("transition %s->%s failed: %v", from, to, err)
				}
			})
		}
	}
}

func TestQuoteUseCase_SetStatusInvalid(t *testing.T) {
	uc := NewQuoteUseCase(nil)
	_, err := uc.SetStatus(context.Background(), "q-1", "arquivado")
	if !errors.Is(err, ErrInvalidQuoteStatus) {
		t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
	}
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("not found leaves collection untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "nonexistent-id").Return(false, nil)

		err := uc.Delete(context.Background(), "nonexistent-id")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_PreviewMatchesPersistedTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo)

	draft := validDraft()
	breakdown, err := uc.Preview(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.Total != 145000 {
		t.Fatalf("expected preview total 145000, got %d", breakdown.Total)
	}

	var persisted entities.Quote
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			persisted = q
			return q, nil
		},
	)
	if _, err := uc.Create(context.Background(), draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.TotalAmount != breakdown.Total {
		t.Fatalf("preview %d != persisted %d", breakdown.Total, persisted.TotalAmount)
	}
}

func TestQuoteUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		{ID: "a", CustomerEmail: "x@y.com", TotalAmount: 100000, LaborFee: 20000, Status: entities.QuoteStatusAprovado},
		{ID: "b", CustomerEmail: "x@y.com", TotalAmount: 50000, LaborFee: 10000, Status: entities.QuoteStatusConcluido},
		{ID: "c", CustomerEmail: "z@y.com", TotalAmount: 30000, LaborFee: 5000, Status: entities.QuoteStatusRejeitado},
		{ID: "d", CustomerEmail: "w@y.com", TotalAmount: 20000, LaborFee: 4000, Status: entities.QuoteStatusPendente},
	}, nil)

	s, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.QuoteCount != 4 || s.TotalAmount != 200000 || s.TotalLabor != 39000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.AverageAmount != 50000 {
		t.Fatalf("expected average 50000, got %d", s.AverageAmount)
	}
	if s.DistinctClients != 3 {
		t.Fatalf("expected 3 distinct clients, got %d", s.DistinctClients)
	}
	// Approved counts both aprovado and concluido.
	if s.ApprovedCount != 2 || s.RejectedCount != 1 || s.PendingCount != 1 {
		t.Fatalf("unexpected status counts: %+v", s)
	}
}

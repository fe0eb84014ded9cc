package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"marcenaria_rampanelli/internal/domain/entities"
	mock_interfaces "marcenaria_rampanelli/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateForQuote(t *testing.T) {
	payload := json.RawMessage(`{"transaction_amount":725.00,"payment_method_id":"pix"}`)

	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayMissing) {
			t.Fatalf("expected ErrPaymentGatewayMissing, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateForQuote(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPendente}, nil)

		_, err := uc.CreateForQuote(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).
			Return("", "", nil, errors.New("provider down"))

		_, err := uc.CreateForQuote(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayFailure) {
			t.Fatalf("expected ErrPaymentGatewayFailure, got %v", err)
		}
	})

	t.Run("approved quote creates payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, quotes, gateway)

		providerResp := json.RawMessage(`{"id":"123","status":"approved"}`)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).
			Return("123", "approved", providerResp, nil)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.QuoteID != "q-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected status aprovado, got %q", p.Status)
				}
				if string(p.MPPayloadRaw) != string(providerResp) {
					t.Fatalf("expected raw provider payload persisted")
				}
				return p, nil
			},
		)

		p, err := uc.CreateForQuote(context.Background(), "q-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.QuoteID != "q-1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":    entities.PaymentStatusAprovado,
		"Accredited":  entities.PaymentStatusAprovado,
		"rejected":    entities.PaymentStatusNegado,
		"charged_back": entities.PaymentStatusNegado,
		"in_process":  entities.PaymentStatusPendente,
		"":            entities.PaymentStatusPendente,
	}
	for provider, want := range cases {
		if got := mapProviderStatus(provider); got != want {
			t.Fatalf("status %q: got %q, want %q", provider, got, want)
		}
	}
}

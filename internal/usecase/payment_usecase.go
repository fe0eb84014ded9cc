package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPaymentQuoteID = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload = errors.New("invalid mercado pago payload")
	ErrQuoteNotApproved      = errors.New("quote not approved")
	ErrPaymentGatewayFailure = errors.New("payment gateway failure")
	ErrPaymentGatewayMissing = errors.New("payment gateway not configured")
)

// IPaymentUseCase collects the contract deposit for an approved quote.
//
// The quote must be "aprovado" before a payment is accepted; the provider
// response is persisted verbatim for audit.
type IPaymentUseCase interface {
	CreateForQuote(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	quotes  interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quotes: quotes, gateway: gateway}
}

func (u *PaymentUseCase) CreateForQuote(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuoteID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayMissing
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if q.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAprovado {
		return entities.Payment{}, ErrQuoteNotApproved
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed quote_id=%s err=%v", quoteID, err)
		return entities.Payment{}, errors.Join(ErrPaymentGatewayFailure, err)
	}
	log.Printf("[payment][usecase] gateway create ok quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerID, providerStatus)

	var parsed map[string]interface{}
	if len(providerResp) > 0 && json.Valid(providerResp) {
		// Best effort; the raw payload is what we rely on for audit.
		_ = json.Unmarshal(providerResp, &parsed)
	}

	p := entities.Payment{
		ID:           uuid.NewString(),
		QuoteID:      quoteID,
		Date:         time.Now().UTC(),
		Status:       mapProviderStatus(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

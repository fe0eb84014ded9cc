package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/domain/pricing"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrMissingCustomer    = errors.New("missing required customer field")
	ErrInvalidLaborFee    = errors.New("invalid labor fee")
	ErrInvalidLineItem    = errors.New("invalid line item")
	ErrInvalidExtraCost   = errors.New("invalid extra cost")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

// QuoteDraft is the operator input for a new quote (or a preview). Line items
// may still carry quantity zero here; those are filtered before persistence.
type QuoteDraft struct {
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProjectDescription string
	LineItems          []entities.LineItem
	LaborFee           int64
	ExtraCosts         []entities.ExtraCost
	Notes              string
}

// QuotePatch is a partial update. Nil fields are left untouched. Whenever any
// of LineItems, LaborFee or ExtraCosts is present the total is recomputed; a
// caller-supplied total is never trusted.
type QuotePatch struct {
	CustomerName       *string
	CustomerPhone      *string
	CustomerEmail      *string
	ProjectDescription *string
	LineItems          *[]entities.LineItem
	LaborFee           *int64
	ExtraCosts         *[]entities.ExtraCost
	Notes              *string
	Status             *entities.QuoteStatus
}

// QuoteSummary aggregates the dashboard numbers over every stored quote.
// Approved counts both "aprovado" and "concluido" quotes.
type QuoteSummary struct {
	QuoteCount      int
	TotalAmount     int64
	TotalLabor      int64
	AverageAmount   int64
	DistinctClients int
	PendingCount    int
	ApprovedCount   int
	RejectedCount   int
}

// IQuoteUseCase exposes the quote operations.
type IQuoteUseCase interface {
	Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Preview(draft QuoteDraft) (pricing.Breakdown, error)
	Summary(ctx context.Context) (QuoteSummary, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	if err := validateDraft(draft); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	notes := strings.TrimSpace(draft.Notes)
	if notes == "" {
		notes = entities.DefaultQuoteNotes
	}

	q := entities.Quote{
		ID:                 uuid.NewString(),
		CustomerName:       strings.TrimSpace(draft.CustomerName),
		CustomerPhone:      strings.TrimSpace(draft.CustomerPhone),
		CustomerEmail:      strings.TrimSpace(draft.CustomerEmail),
		ProjectDescription: strings.TrimSpace(draft.ProjectDescription),
		LineItems:          selectedItems(draft.LineItems),
		LaborFee:           draft.LaborFee,
		ExtraCosts:         normalizeExtraCosts(draft.ExtraCosts),
		Notes:              notes,
		Status:             entities.QuoteStatusPendente,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	q.TotalAmount = pricing.Total(q.LineItems, q.LaborFee, q.ExtraCosts)

	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if patch.CustomerName != nil {
		q.CustomerName = strings.TrimSpace(*patch.CustomerName)
	}
	if patch.CustomerPhone != nil {
		q.CustomerPhone = strings.TrimSpace(*patch.CustomerPhone)
	}
	if patch.CustomerEmail != nil {
		q.CustomerEmail = strings.TrimSpace(*patch.CustomerEmail)
	}
	if patch.ProjectDescription != nil {
		q.ProjectDescription = strings.TrimSpace(*patch.ProjectDescription)
	}
	if q.CustomerName == "" || q.CustomerPhone == "" || q.CustomerEmail == "" || q.ProjectDescription == "" {
		return entities.Quote{}, ErrMissingCustomer
	}

	if patch.LineItems != nil {
		if err := validateLineItems(*patch.LineItems); err != nil {
			return entities.Quote{}, err
		}
		q.LineItems = selectedItems(*patch.LineItems)
	}
	if patch.LaborFee != nil {
		if *patch.LaborFee < 0 {
			return entities.Quote{}, ErrInvalidLaborFee
		}
		q.LaborFee = *patch.LaborFee
	}
	if patch.ExtraCosts != nil {
		if err := validateExtraCosts(*patch.ExtraCosts); err != nil {
			return entities.Quote{}, err
		}
		q.ExtraCosts = normalizeExtraCosts(*patch.ExtraCosts)
	}
	if patch.Notes != nil {
		q.Notes = *patch.Notes
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.Quote{}, ErrInvalidQuoteStatus
		}
		q.Status = *patch.Status
	}

	// The total is always re-derived from the stored components, so a stale
	// or inconsistent caller total can never reach the collection.
	q.TotalAmount = pricing.Total(q.LineItems, q.LaborFee, q.ExtraCosts)
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrQuoteNotFound
	}
	return nil
}

// SetStatus moves a quote to the given status. Every pair of statuses is
// allowed, including setting the current status again; there are no guard
// conditions and no transition side effects.
func (u *QuoteUseCase) SetStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	return u.Update(ctx, id, QuotePatch{Status: &status})
}

// Preview computes the running totals for an unpersisted draft. Nothing is
// stored; the same calculator used at create/update time runs here, so the
// preview always matches the total that would be persisted.
func (u *QuoteUseCase) Preview(draft QuoteDraft) (pricing.Breakdown, error) {
	if draft.LaborFee < 0 {
		return pricing.Breakdown{}, ErrInvalidLaborFee
	}
	if err := validateLineItems(draft.LineItems); err != nil {
		return pricing.Breakdown{}, err
	}
	if err := validateExtraCosts(draft.ExtraCosts); err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Compute(selectedItems(draft.LineItems), draft.LaborFee, draft.ExtraCosts), nil
}

func (u *QuoteUseCase) Summary(ctx context.Context) (QuoteSummary, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return QuoteSummary{}, err
	}

	var s QuoteSummary
	emails := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		s.QuoteCount++
		s.TotalAmount += q.TotalAmount
		s.TotalLabor += q.LaborFee
		emails[q.CustomerEmail] = struct{}{}

		switch q.Status {
		case entities.QuoteStatusAprovado, entities.QuoteStatusConcluido:
			s.ApprovedCount++
		case entities.QuoteStatusRejeitado:
			s.RejectedCount++
		case entities.QuoteStatusPendente:
			s.PendingCount++
		}
	}
	s.DistinctClients = len(emails)
	if s.QuoteCount > 0 {
		s.AverageAmount = s.TotalAmount / int64(s.QuoteCount)
	}
	return s, nil
}

func validateDraft(d QuoteDraft) error {
	if strings.TrimSpace(d.CustomerName) == "" ||
		strings.TrimSpace(d.CustomerPhone) == "" ||
		strings.TrimSpace(d.CustomerEmail) == "" ||
		strings.TrimSpace(d.ProjectDescription) == "" {
		return ErrMissingCustomer
	}
	if d.LaborFee < 0 {
		return ErrInvalidLaborFee
	}
	if err := validateLineItems(d.LineItems); err != nil {
		return err
	}
	return validateExtraCosts(d.ExtraCosts)
}

func validateLineItems(items []entities.LineItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.UnitPrice <= 0 || it.Quantity < 0 {
			return ErrInvalidLineItem
		}
	}
	return nil
}

func validateExtraCosts(costs []entities.ExtraCost) error {
	for _, c := range costs {
		if strings.TrimSpace(c.Description) == "" || c.Amount <= 0 {
			return ErrInvalidExtraCost
		}
	}
	return nil
}

// selectedItems drops quantity-zero items: they mean "excluded from the
// quote" and are never stored.
func selectedItems(items []entities.LineItem) []entities.LineItem {
	selected := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			selected = append(selected, it)
		}
	}
	return selected
}

// normalizeExtraCosts maps an absent sequence to an empty one so stored
// quotes always carry the field. Records persisted before the field existed
// get the same treatment on load.
func normalizeExtraCosts(costs []entities.ExtraCost) []entities.ExtraCost {
	if costs == nil {
		return []entities.ExtraCost{}
	}
	return costs
}

package interfaces

import "marcenaria_rampanelli/internal/domain/entities"

//go:generate mockgen -source=document_renderer_interface.go -destination=mocks/document_renderer_mock.go -package=mocks

// IQuoteDocumentRenderer produces the two PDF renditions of a quote.
//
// Both renditions are pure read-only views: they must reproduce the stored
// TotalAmount exactly and never mutate quote state. The internal rendition
// exposes the labor fee as a visible profit line and is marked for internal
// use only; the client rendition presents labor without the profit marking
// and adds the payment-terms and warranty boilerplate.
type IQuoteDocumentRenderer interface {
	RenderInternal(q entities.Quote) ([]byte, error)
	RenderClient(q entities.Quote) ([]byte, error)
}

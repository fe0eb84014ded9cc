package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"marcenaria_rampanelli/internal/usecase"
	"marcenaria_rampanelli/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the two PDF renditions of a quote: the internal one
// with the full cost breakdown, and the client-facing one without cost
// internals.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) GetInternalDocument(c *gin.Context) {
	h.serve(c, h.usecase.RenderInternal)
}

func (h *DocumentHandler) GetClientDocument(c *gin.Context) {
	h.serve(c, h.usecase.RenderClient)
}

func (h *DocumentHandler) serve(
	c *gin.Context,
	render func(ctx context.Context, quoteID string) ([]byte, string, error),
) {
	quoteID := c.Param("quote_id")

	pdf, filename, err := render(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[document][handler] render failed quote_id=%s err=%v", quoteID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

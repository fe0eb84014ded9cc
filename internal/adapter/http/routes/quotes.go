package routes

import (
	"marcenaria_rampanelli/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	documentHandler *handlers.DocumentHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		// Fixed paths before the :quote_id wildcard.
		quotes.GET("/summary", quoteHandler.GetQuoteSummary)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuoteByID)
		quotes.PATCH("/:quote_id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:quote_id/status", quoteHandler.SetQuoteStatus)
		quotes.GET("/:quote_id/documents/internal", documentHandler.GetInternalDocument)
		quotes.GET("/:quote_id/documents/client", documentHandler.GetClientDocument)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}

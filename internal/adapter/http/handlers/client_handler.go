package handlers

import (
	"errors"
	"net/http"

	request "marcenaria_rampanelli/internal/adapter/http/dto/request"
	response "marcenaria_rampanelli/internal/adapter/http/dto/response"
	"marcenaria_rampanelli/internal/usecase"
	"marcenaria_rampanelli/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for the customer directory used by the
// quote form autocomplete.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// SearchClients matches the q query parameter as a case-insensitive
// substring of name, e-mail or phone.
func (h *ClientHandler) SearchClients(c *gin.Context) {
	clients, err := h.usecase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client, err := h.usecase.Add(c.Request.Context(), payload.Name, payload.Email, payload.Phone)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

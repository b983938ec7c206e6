package handlers

import (
	"errors"
	"net/http"

	request "tms_gruas/internal/adapter/http/dto/request"
	response "tms_gruas/internal/adapter/http/dto/response"
	"tms_gruas/internal/usecase"
	"tms_gruas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClosurePayload = pkg.NewDomainErrorSimple("INVALID_CLOSURE_INPUT", "Invalid closure payload", http.StatusBadRequest)
)

// ClosureHandler handles HTTP requests for service closures, the batch
// grouping of completed services ahead of invoicing.

type ClosureHandler struct {
	usecase usecase.IClosureUseCase
}

func NewClosureHandler(uc usecase.IClosureUseCase) *ClosureHandler {
	return &ClosureHandler{usecase: uc}
}

func (h *ClosureHandler) CreateClosure(c *gin.Context) {
	var payload request.ClosureCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClosurePayload.HTTPStatus, errInvalidClosurePayload.ToHTTPError())
		return
	}

	from, to, err := payload.Range()
	if err != nil {
		c.JSON(errInvalidClosurePayload.HTTPStatus, errInvalidClosurePayload.ToHTTPError())
		return
	}

	closure, err := h.usecase.CreateFromRange(c.Request.Context(), payload.ClientID, from, to)
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClosure(closure))
}

func (h *ClosureHandler) GetClosure(c *gin.Context) {
	closure, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClosure(closure))
}

func (h *ClosureHandler) ListClosures(c *gin.Context) {
	closures, err := h.usecase.List(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClosures(closures))
}

func mapClosureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClosureID), errors.Is(err, usecase.ErrInvalidClosureRange), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClosureNotFound):
		return pkg.NewDomainErrorSimple("CLOSURE_NOT_FOUND", "Closure not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoServicesToClose):
		return pkg.NewDomainErrorSimple("NO_SERVICES_TO_CLOSE", "No completed services in the requested range", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrClosureAlreadyBilled):
		return pkg.NewDomainErrorSimple("CLOSURE_ALREADY_BILLED", "Closure already invoiced", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

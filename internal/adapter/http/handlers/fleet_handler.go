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
	errInvalidFleetPayload = pkg.NewDomainErrorSimple("INVALID_FLEET_INPUT", "Invalid fleet payload", http.StatusBadRequest)
)

// FleetHandler handles HTTP requests for cranes and operators.

type FleetHandler struct {
	cranes    usecase.ICraneUseCase
	operators usecase.IOperatorUseCase
}

func NewFleetHandler(cranes usecase.ICraneUseCase, operators usecase.IOperatorUseCase) *FleetHandler {
	return &FleetHandler{cranes: cranes, operators: operators}
}

func (h *FleetHandler) CreateCrane(c *gin.Context) {
	var payload request.CraneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFleetPayload.HTTPStatus, errInvalidFleetPayload.ToHTTPError())
		return
	}

	crane, err := h.cranes.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCrane(crane))
}

func (h *FleetHandler) GetCrane(c *gin.Context) {
	crane, err := h.cranes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCrane(crane))
}

func (h *FleetHandler) ListCranes(c *gin.Context) {
	cranes, err := h.cranes.List(c.Request.Context())
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCranes(cranes))
}

func (h *FleetHandler) UpdateCrane(c *gin.Context) {
	var payload request.CraneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFleetPayload.HTTPStatus, errInvalidFleetPayload.ToHTTPError())
		return
	}

	input := payload.ToEntity()
	input.ID = c.Param("id")

	crane, err := h.cranes.Update(c.Request.Context(), input)
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCrane(crane))
}

func (h *FleetHandler) DeleteCrane(c *gin.Context) {
	if err := h.cranes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FleetHandler) CreateOperator(c *gin.Context) {
	var payload request.OperatorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFleetPayload.HTTPStatus, errInvalidFleetPayload.ToHTTPError())
		return
	}

	operator, err := h.operators.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOperator(operator))
}

func (h *FleetHandler) GetOperator(c *gin.Context) {
	operator, err := h.operators.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperator(operator))
}

func (h *FleetHandler) ListOperators(c *gin.Context) {
	operators, err := h.operators.List(c.Request.Context())
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperators(operators))
}

func (h *FleetHandler) UpdateOperator(c *gin.Context) {
	var payload request.OperatorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFleetPayload.HTTPStatus, errInvalidFleetPayload.ToHTTPError())
		return
	}

	input := payload.ToEntity()
	input.ID = c.Param("id")

	operator, err := h.operators.Update(c.Request.Context(), input)
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperator(operator))
}

func (h *FleetHandler) DeleteOperator(c *gin.Context) {
	if err := h.operators.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFleetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFleetEntryID), errors.Is(err, usecase.ErrInvalidCraneInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOperatorRUT):
		return pkg.NewDomainErrorSimple("INVALID_RUT", "Invalid RUT", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCraneNotFound):
		return pkg.NewDomainErrorSimple("CRANE_NOT_FOUND", "Crane not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperatorNotFound):
		return pkg.NewDomainErrorSimple("OPERATOR_NOT_FOUND", "Operator not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "tms_gruas/internal/adapter/http/dto/request"
	response "tms_gruas/internal/adapter/http/dto/response"
	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase"
	"tms_gruas/internal/usecase/interfaces"
	"tms_gruas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
)

// ServiceHandler handles HTTP requests for crane services, including the
// start-service flow and the embedded inspection form lifecycle.

type ServiceHandler struct {
	usecase    usecase.IServiceUseCase
	starter    usecase.IStartServiceUseCase
	inspection usecase.IInspectionUseCase
}

func NewServiceHandler(
	uc usecase.IServiceUseCase,
	starter usecase.IStartServiceUseCase,
	inspection usecase.IInspectionUseCase,
) *ServiceHandler {
	return &ServiceHandler{usecase: uc, starter: starter, inspection: inspection}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	input, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

// ListServices filters by client_id, status, from and to query parameters.
// Dates accept RFC3339 or plain YYYY-MM-DD.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	filter := interfaces.ServiceFilter{
		ClientID: strings.TrimSpace(c.Query("client_id")),
		Status:   entities.ServiceStatus(strings.TrimSpace(c.Query("status"))),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown service status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var err error
	if filter.From, err = parseQueryDate(c.Query("from")); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	if filter.To, err = parseQueryDate(c.Query("to")); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	services, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	input, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	input.ID = c.Param("id")

	svc, err := h.usecase.Update(c.Request.Context(), input)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TransitionService applies an explicit status change (PATCH :id/status).
// The pending -> in_progress transition should go through StartService so
// the report pipeline runs; this endpoint covers completion and cancelling.
func (h *ServiceHandler) TransitionService(c *gin.Context) {
	var payload request.ServiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), entities.ServiceStatus(payload.Status))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

// StartService runs the operator start flow. Stage progress callbacks are
// collected and returned alongside any non-fatal warnings; the response is
// 200 even when PDF or email stages degraded.
func (h *ServiceHandler) StartService(c *gin.Context) {
	var progress []response.ProgressEvent
	onProgress := func(percent int, stage string) {
		progress = append(progress, response.ProgressEvent{Percent: percent, Stage: stage})
	}

	result, err := h.starter.Start(c.Request.Context(), c.Param("id"), onProgress)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStartServiceResult(result, progress))
}

// SubmitInspection replaces the inspection working copy and submits it in a
// single request. Validation failures come back as a 422 carrying every
// failed rule, and the stored draft survives for the next attempt.
func (h *ServiceHandler) SubmitInspection(c *gin.Context) {
	var payload request.InspectionFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	session, err := h.inspection.OpenSession(c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	session.Update(payload.ToEntity())
	svc, err := session.Submit(c.Request.Context())
	if err != nil {
		var verrs *usecase.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "INSPECTION_VALIDATION_FAILED",
				"message": "Inspection form is not submittable",
				"errors":  verrs.Messages,
			})
			return
		}
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

// SaveInspectionDraft stores the inspection working copy without submitting,
// the page-hide flush path of the form.
func (h *ServiceHandler) SaveInspectionDraft(c *gin.Context) {
	var payload request.InspectionFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	session, err := h.inspection.OpenSession(c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	session.Update(payload.ToEntity())
	session.Flush()

	c.Status(http.StatusAccepted)
}

// GetInspectionDraft returns the stored working copy, if any, so the form
// can be restored after a reload.
func (h *ServiceHandler) GetInspectionDraft(c *gin.Context) {
	session, err := h.inspection.OpenSession(c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, session.Form())
}

func parseQueryDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found for service", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotStartable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_STARTABLE", "Service cannot be started from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("INSPECTION_ALREADY_SUBMITTED", "Inspection already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

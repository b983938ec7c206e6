package handlers

import (
	"errors"
	"net/http"

	request "tms_gruas/internal/adapter/http/dto/request"
	response "tms_gruas/internal/adapter/http/dto/response"
	"tms_gruas/internal/infrastructure/imaging"
	"tms_gruas/internal/usecase"
	"tms_gruas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler handles the company settings singleton and the logo upload.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
	photos  *imaging.Processor
}

func NewSettingsHandler(uc usecase.ISettingsUseCase, photos *imaging.Processor) *SettingsHandler {
	return &SettingsHandler{usecase: uc, photos: photos}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	input := payload.ToEntity()
	// The logo has its own upload endpoint; a plain save keeps it.
	current, err := h.usecase.Get(c.Request.Context())
	if err == nil {
		input.LogoDataURL = current.LogoDataURL
	}

	settings, err := h.usecase.Save(c.Request.Context(), input)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// UploadLogo processes the multipart "logo" file and stores it on the
// settings row as a data URL.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing logo file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	src, err := file.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer src.Close()

	logo, err := h.photos.ProcessLogo("logo", src)
	if err != nil {
		appErr := pkg.NewDomainError("IMAGE_PROCESSING_FAILED", "Could not process logo image", err, http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	settings.LogoDataURL = logo.DataURL

	saved, err := h.usecase.Save(c.Request.Context(), settings)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(saved))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettingsInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientRUT):
		return pkg.NewDomainErrorSimple("INVALID_RUT", "Invalid RUT", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

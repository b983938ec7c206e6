package handlers

import (
	"net/http"
	"strings"

	response "tms_gruas/internal/adapter/http/dto/response"
	"tms_gruas/internal/infrastructure/imaging"
	"tms_gruas/pkg"

	"github.com/gin-gonic/gin"
)

// MediaHandler processes uploaded inspection photos: decode, downscale,
// re-encode to a data URL the form stores in its photo sets.

type MediaHandler struct {
	photos *imaging.Processor
}

func NewMediaHandler(photos *imaging.Processor) *MediaHandler {
	return &MediaHandler{photos: photos}
}

// ProcessPhoto accepts a multipart "photo" file plus an optional "set" field
// used as the generated name prefix.
func (h *MediaHandler) ProcessPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing photo file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	prefix := strings.TrimSpace(c.PostForm("set"))
	if prefix == "" {
		prefix = "foto"
	}

	src, err := file.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer src.Close()

	photo, err := h.photos.ProcessInspectionPhoto(prefix, src)
	if err != nil {
		appErr := pkg.NewDomainError("IMAGE_PROCESSING_FAILED", "Could not process photo", err, http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhoto(photo))
}

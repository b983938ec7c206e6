package handlers

import (
	"errors"
	"net/http"

	"tms_gruas/internal/usecase"
	"tms_gruas/pkg"

	"github.com/gin-gonic/gin"
)

// BackupHandler exposes the on-demand table export.

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// GenerateBackup runs an export. The "type" query selects full (default) or
// quick; the result is the JSON document the frontend offers as a download.
func (h *BackupHandler) GenerateBackup(c *gin.Context) {
	result, err := h.usecase.Generate(c.Request.Context(), c.Query("type"))
	if err != nil {
		appErr := mapBackupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapBackupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBackupType):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP_TYPE", "Backup type must be full or quick", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

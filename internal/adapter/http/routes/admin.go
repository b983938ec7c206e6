package routes

import (
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings = "/settings"
	PathMedia    = "/media"
	PathBackup   = "/backup"
)

func addAdminRoutes(
	rg *gin.RouterGroup,
	settingsHandler *handlers.SettingsHandler,
	mediaHandler *handlers.MediaHandler,
	backupHandler *handlers.BackupHandler,
	hub *ws.Hub,
) {
	settings := rg.Group(PathSettings, notifyChanges(hub, "settings"))
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.SaveSettings)
		settings.POST("/logo", settingsHandler.UploadLogo)
	}

	media := rg.Group(PathMedia)
	{
		media.POST("/photos", mediaHandler.ProcessPhoto)
	}

	rg.GET(PathBackup, backupHandler.GenerateBackup)

	rg.GET("/ws", hub.Handler)
}

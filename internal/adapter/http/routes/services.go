package routes

import (
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, hub *ws.Hub) {
	services := rg.Group(PathServices, notifyChanges(hub, "service"))
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.PATCH("/:id/status", serviceHandler.TransitionService)
		services.POST("/:id/start", serviceHandler.StartService)

		// Inspection form lifecycle: draft save/restore plus submission.
		services.GET("/:id/inspection/draft", serviceHandler.GetInspectionDraft)
		services.POST("/:id/inspection/draft", serviceHandler.SaveInspectionDraft)
		services.PUT("/:id/inspection", serviceHandler.SubmitInspection)
	}
}

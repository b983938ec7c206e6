package routes

import (
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathCranes    = "/cranes"
	PathOperators = "/operators"
)

func addFleetRoutes(rg *gin.RouterGroup, fleetHandler *handlers.FleetHandler, hub *ws.Hub) {
	cranes := rg.Group(PathCranes, notifyChanges(hub, "crane"))
	{
		cranes.POST("", fleetHandler.CreateCrane)
		cranes.GET("", fleetHandler.ListCranes)
		cranes.GET("/:id", fleetHandler.GetCrane)
		cranes.PUT("/:id", fleetHandler.UpdateCrane)
		cranes.DELETE("/:id", fleetHandler.DeleteCrane)
	}

	operators := rg.Group(PathOperators, notifyChanges(hub, "operator"))
	{
		operators.POST("", fleetHandler.CreateOperator)
		operators.GET("", fleetHandler.ListOperators)
		operators.GET("/:id", fleetHandler.GetOperator)
		operators.PUT("/:id", fleetHandler.UpdateOperator)
		operators.DELETE("/:id", fleetHandler.DeleteOperator)
	}
}

package routes

import (
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathClients = "/clients"
)

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, hub *ws.Hub) {
	clients := rg.Group(PathClients, notifyChanges(hub, "client"))
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}

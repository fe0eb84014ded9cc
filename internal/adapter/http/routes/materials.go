package routes

import (
	"marcenaria_rampanelli/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMaterials = "/materials"
	PathClients   = "/clients"
)

func addCatalogRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler, clientHandler *handlers.ClientHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", materialHandler.ListMaterials)
		materials.POST("", materialHandler.CreateMaterial)
		materials.PATCH("/:material_id", materialHandler.UpdateMaterial)
		materials.DELETE("/:material_id", materialHandler.DeleteMaterial)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.SearchClients)
		clients.POST("", clientHandler.CreateClient)
	}
}

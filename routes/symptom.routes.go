package routes

import (
	"healthtracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSymptomRoutes(router *gin.Engine, symptomController *controllers.SymptomController, requireAuth gin.HandlerFunc) {
	symptomRoutes := router.Group("/api/symptoms")
	symptomRoutes.Use(requireAuth)
	{
		symptomRoutes.GET("", symptomController.ListSymptoms)
		symptomRoutes.POST("", symptomController.CreateSymptom)
		symptomRoutes.DELETE("/:id", symptomController.DeleteSymptom)
	}
}

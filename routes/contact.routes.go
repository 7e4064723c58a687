package routes

import (
	"healthtracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterContactRoutes(router *gin.Engine, contactController *controllers.ContactController, requireAuth, requireAdmin gin.HandlerFunc) {
	contactRoutesPublic := router.Group("/api/contacts")
	{
		contactRoutesPublic.POST("", contactController.CreateContact)
	}
	contactRoutesAdmin := router.Group("/api/contacts")
	contactRoutesAdmin.Use(requireAuth, requireAdmin)
	{
		contactRoutesAdmin.GET("", contactController.ListContacts)
		contactRoutesAdmin.DELETE("/:id", contactController.DeleteContact)
	}
}

package routes

import (
	"healthtracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, requireAuth, requireAdmin gin.HandlerFunc) {
	userRoutes := router.Group("/api/users")
	userRoutes.Use(requireAuth, requireAdmin)
	{
		userRoutes.GET("", userController.ListUsers)
		userRoutes.DELETE("/:id", userController.DeleteUser)
	}
}

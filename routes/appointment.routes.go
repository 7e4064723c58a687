package routes

import (
	"healthtracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAppointmentRoutes(router *gin.Engine, appointmentController *controllers.AppointmentController, requireAuth gin.HandlerFunc) {
	appointmentRoutes := router.Group("/api/appointments")
	appointmentRoutes.Use(requireAuth)
	{
		appointmentRoutes.GET("", appointmentController.ListAppointments)
		appointmentRoutes.POST("", appointmentController.CreateAppointment)
		appointmentRoutes.DELETE("/:id", appointmentController.DeleteAppointment)
	}
}

package controllers

import (
	"net/http"
	"strconv"

	"healthtracker/internal/middleware"
	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointments repository.AppointmentRepository
}

func NewAppointmentController(appointments repository.AppointmentRepository) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// ListAppointments godoc
// @Summary List appointments
// @Description Without userId, lists the caller's own appointments. With
// @Description ?userId= any authenticated caller may list that user's records.
// @Tags appointments
// @Produce json
// @Param userId query int false "Target user ID"
// @Success 200 {array} models.Appointment
// @Failure 500 {object} map[string]interface{} "Failed to fetch appointments"
// @Router /api/appointments [get]
func (ac *AppointmentController) ListAppointments(c *gin.Context) {
	targetID := middleware.CurrentUserID(c)
	if query := c.Query("userId"); query != "" {
		id, err := strconv.ParseUint(query, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		targetID = uint(id)
	}

	appointments, err := ac.appointments.FindAllByUserID(targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch appointments"})
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment godoc
// @Summary Create an appointment owned by the caller
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment data"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} map[string]interface{} "Failed to create appointment"
// @Router /api/appointments [post]
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create appointment"})
		return
	}

	// Ownership comes from the token, never from the body.
	appointment.ID = 0
	appointment.UserID = middleware.CurrentUserID(c)

	if err := ac.appointments.Create(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Description Owner only; admin status does not bypass the ownership check.
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment deleted successfully"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete appointment"
// @Router /api/appointments/{id} [delete]
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment ID"})
		return
	}

	appointment, err := ac.appointments.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete appointment"})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}

	if appointment.UserID != middleware.CurrentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	if err := ac.appointments.Delete(appointment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

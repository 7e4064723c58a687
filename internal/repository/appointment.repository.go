package repository

import (
	"errors"

	"healthtracker/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	FindAllByUserID(userID uint) ([]models.Appointment, error)
	Delete(id uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db}
}

func (r *appointmentRepository) Create(appointment *models.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = "scheduled"
	}
	return r.db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAllByUserID(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("user_id = ?", userID).Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}

package repository

import (
	"errors"

	"healthtracker/internal/models"

	"gorm.io/gorm"
)

type SymptomRepository interface {
	Create(symptom *models.Symptom) error
	FindByID(id uint) (*models.Symptom, error)
	FindAllByUserID(userID uint) ([]models.Symptom, error)
	Delete(id uint) error
}

type symptomRepository struct {
	db *gorm.DB
}

func NewSymptomRepository(db *gorm.DB) SymptomRepository {
	return &symptomRepository{db}
}

func (r *symptomRepository) Create(symptom *models.Symptom) error {
	return r.db.Create(symptom).Error
}

func (r *symptomRepository) FindByID(id uint) (*models.Symptom, error) {
	var symptom models.Symptom
	err := r.db.First(&symptom, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &symptom, nil
}

func (r *symptomRepository) FindAllByUserID(userID uint) ([]models.Symptom, error) {
	var symptoms []models.Symptom
	err := r.db.Where("user_id = ?", userID).Find(&symptoms).Error
	return symptoms, err
}

func (r *symptomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Symptom{}, id).Error
}

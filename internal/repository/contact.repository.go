package repository

import (
	"errors"

	"healthtracker/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id uint) (*models.Contact, error)
	FindAll() ([]models.Contact, error)
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}

package controllers

import (
	"net/http"
	"strconv"

	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contacts repository.ContactRepository
}

func NewContactController(contacts repository.ContactRepository) *ContactController {
	return &ContactController{contacts: contacts}
}

// CreateContact godoc
// @Summary Submit a contact message
// @Description Open to unauthenticated callers
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.Contact true "Contact message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]interface{} "Failed to send message"
// @Router /api/contacts [post]
func (cc *ContactController) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to send message"})
		return
	}

	contact.ID = 0

	if err := cc.contacts.Create(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts godoc
// @Summary List contact messages
// @Description Admin only
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 500 {object} map[string]interface{} "Failed to fetch contacts"
// @Router /api/contacts [get]
func (cc *ContactController) ListContacts(c *gin.Context) {
	contacts, err := cc.contacts.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contacts"})
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

// DeleteContact godoc
// @Summary Delete a contact message
// @Description Admin only
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]interface{} "Contact deleted successfully"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete contact"
// @Router /api/contacts/{id} [delete]
func (cc *ContactController) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact ID"})
		return
	}

	contact, err := cc.contacts.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete contact"})
		return
	}
	if contact == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
		return
	}

	if err := cc.contacts.Delete(contact.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

package controllers

import (
	"net/http"
	"strconv"

	"healthtracker/internal/middleware"
	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

type SymptomController struct {
	symptoms repository.SymptomRepository
}

func NewSymptomController(symptoms repository.SymptomRepository) *SymptomController {
	return &SymptomController{symptoms: symptoms}
}

// ListSymptoms godoc
// @Summary List symptom entries
// @Description Without userId, lists the caller's own symptoms. With ?userId=
// @Description any authenticated caller may list that user's records.
// @Tags symptoms
// @Produce json
// @Param userId query int false "Target user ID"
// @Success 200 {array} models.Symptom
// @Failure 500 {object} map[string]interface{} "Failed to fetch symptoms"
// @Router /api/symptoms [get]
func (sc *SymptomController) ListSymptoms(c *gin.Context) {
	targetID := middleware.CurrentUserID(c)
	if query := c.Query("userId"); query != "" {
		id, err := strconv.ParseUint(query, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		targetID = uint(id)
	}

	symptoms, err := sc.symptoms.FindAllByUserID(targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch symptoms"})
		return
	}
	if symptoms == nil {
		symptoms = []models.Symptom{}
	}
	c.JSON(http.StatusOK, symptoms)
}

// CreateSymptom godoc
// @Summary Log a symptom entry owned by the caller
// @Tags symptoms
// @Accept json
// @Produce json
// @Param symptom body models.Symptom true "Symptom data"
// @Success 201 {object} models.Symptom
// @Failure 400 {object} map[string]interface{} "Failed to create symptom"
// @Router /api/symptoms [post]
func (sc *SymptomController) CreateSymptom(c *gin.Context) {
	var symptom models.Symptom
	if err := c.ShouldBindJSON(&symptom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create symptom"})
		return
	}

	symptom.ID = 0
	symptom.UserID = middleware.CurrentUserID(c)

	if err := sc.symptoms.Create(&symptom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create symptom"})
		return
	}

	c.JSON(http.StatusCreated, symptom)
}

// DeleteSymptom godoc
// @Summary Delete a symptom entry
// @Description Owner only; admin status does not bypass the ownership check.
// @Tags symptoms
// @Produce json
// @Param id path int true "Symptom ID"
// @Success 200 {object} map[string]interface{} "Symptom deleted successfully"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Symptom not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete symptom"
// @Router /api/symptoms/{id} [delete]
func (sc *SymptomController) DeleteSymptom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid symptom ID"})
		return
	}

	symptom, err := sc.symptoms.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete symptom"})
		return
	}
	if symptom == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Symptom not found"})
		return
	}

	if symptom.UserID != middleware.CurrentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	if err := sc.symptoms.Delete(symptom.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete symptom"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Symptom deleted successfully"})
}

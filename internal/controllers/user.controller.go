package controllers

import (
	"net/http"
	"strconv"

	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users repository.UserRepository
}

func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{users: users}
}

// ListUsers godoc
// @Summary List all users
// @Description Admin only
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 500 {object} map[string]interface{} "Failed to fetch users"
// @Router /api/users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete a user and everything they own
// @Description Admin only. Admin accounts can never be deleted. The user's
// @Description appointments and symptoms are removed in the same transaction.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Failure 400 {object} map[string]interface{} "Target is an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete user"
// @Router /api/users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := uc.users.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if user.IsAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete admin user"})
		return
	}

	if err := uc.users.Delete(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

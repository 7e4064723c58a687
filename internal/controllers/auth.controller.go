package controllers

import (
	"net/http"

	"healthtracker/internal/auth"
	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthController(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthController {
	return &AuthController{users: users, hasher: hasher, tokens: tokens}
}

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return it together with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "user and access_token"
// @Failure 400 {object} map[string]interface{} "Duplicate username/email or malformed request"
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}

	existing, err := ac.users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}

	existing, err = ac.users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	}

	hash, err := ac.hasher.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}

	// The admin flag is deliberately not bindable here; admins are only
	// created by seeding.
	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		DateOfBirth:  req.DateOfBirth,
	}

	if err := ac.users.Create(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}

	token, err := ac.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         user,
		"access_token": token,
	})
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "user and access_token"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	user, err := ac.users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	// Unknown username and wrong password are indistinguishable to the caller.
	if user == nil || !ac.hasher.Check(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := ac.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"access_token": token,
	})
}

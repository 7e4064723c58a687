package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthtracker/internal/auth"
	"healthtracker/internal/models"
	"healthtracker/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupAuthController() (*AuthController, *mocks.MockUserRepository, *auth.TokenService) {
	users := new(mocks.MockUserRepository)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService([]byte("test-secret-key"), 7*24*time.Hour)
	return NewAuthController(users, hasher, tokens), users, tokens
}

func postJSON(router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"username":    "alice",
		"email":       "a@x.com",
		"password":    "pw",
		"firstName":   "A",
		"lastName":    "B",
		"gender":      "F",
		"dateOfBirth": "2000-01-01",
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful registration",
			requestBody: registerBody(),
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(nil, nil)
				users.On("FindByEmail", "a@x.com").Return(nil, nil)
				users.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
					args.Get(0).(*models.User).ID = 1
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "username already exists",
			requestBody: registerBody(),
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username already exists",
		},
		{
			name:        "email already exists",
			requestBody: registerBody(),
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(nil, nil)
				users.On("FindByEmail", "a@x.com").Return(&models.User{ID: 2, Email: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email already exists",
		},
		{
			name: "missing required field",
			requestBody: map[string]interface{}{
				"username": "alice",
				"email":    "a@x.com",
				// no password
			},
			setupMocks:     func(users *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Registration failed",
		},
		{
			name:        "store failure",
			requestBody: registerBody(),
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(nil, nil)
				users.On("FindByEmail", "a@x.com").Return(nil, nil)
				users.On("Create", mock.AnythingOfType("*models.User")).Return(errors.New("constraint violation"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, users, _ := setupAuthController()
			tt.setupMocks(users)

			router := setupTestRouter()
			router.POST("/api/auth/register", controller.Register)

			w := postJSON(router, "/api/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedStatus == http.StatusCreated {
				user, ok := response["user"].(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "alice", user["username"])
				assert.NotContains(t, user, "password")
				assert.NotContains(t, user, "passwordHash")
				assert.NotEmpty(t, response["access_token"])
			} else {
				assert.Contains(t, response["message"], tt.expectedMsg)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)

	account := &models.User{ID: 7, Username: "alice", Email: "a@x.com", PasswordHash: hash}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"username": "alice",
				"password": "password123",
			},
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(account, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"username": "alice",
				"password": "wrongpassword",
			},
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "alice").Return(account, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "unknown username",
			requestBody: map[string]interface{}{
				"username": "nobody",
				"password": "password123",
			},
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByUsername", "nobody").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "missing password",
			requestBody: map[string]interface{}{
				"username": "alice",
			},
			setupMocks:     func(users *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, users, tokens := setupAuthController()
			tt.setupMocks(users)

			router := setupTestRouter()
			router.POST("/api/auth/login", controller.Login)

			w := postJSON(router, "/api/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedStatus == http.StatusOK {
				token, ok := response["access_token"].(string)
				assert.True(t, ok)

				// The token's decoded identity is the user's id.
				userID, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, account.ID, userID)
			} else {
				assert.Contains(t, response["message"], tt.expectedMsg)
			}

			users.AssertExpectations(t)
		})
	}
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtracker/internal/models"
	"healthtracker/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateContact(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockContactRepository)
		expectedStatus int
	}{
		{
			name: "anonymous submission succeeds",
			requestBody: map[string]interface{}{
				"name":    "Jane",
				"email":   "jane@example.com",
				"subject": "Hello",
				"message": "A question about appointments",
			},
			setupMocks: func(contacts *mocks.MockContactRepository) {
				contacts.On("Create", mock.AnythingOfType("*models.Contact")).Run(func(args mock.Arguments) {
					args.Get(0).(*models.Contact).ID = 4
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing subject",
			requestBody: map[string]interface{}{
				"name":    "Jane",
				"email":   "jane@example.com",
				"message": "A question",
			},
			setupMocks:     func(contacts *mocks.MockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := new(mocks.MockContactRepository)
			tt.setupMocks(contacts)
			controller := NewContactController(contacts)

			router := setupTestRouter()
			// No auth middleware: this route is public.
			router.POST("/api/contacts", controller.CreateContact)

			w := postJSON(router, "/api/contacts", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, float64(4), response["id"])
				assert.Equal(t, "Jane", response["name"])
			}
			contacts.AssertExpectations(t)
		})
	}
}

func TestListContacts(t *testing.T) {
	contacts := new(mocks.MockContactRepository)
	contacts.On("FindAll").Return([]models.Contact{
		{ID: 1, Name: "Jane", Subject: "Hello"},
	}, nil)
	controller := NewContactController(contacts)

	router := setupTestRouter()
	router.GET("/api/contacts", controller.ListContacts)

	req := httptest.NewRequest("GET", "/api/contacts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	contacts.AssertExpectations(t)
}

func TestDeleteContact(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockContactRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful delete",
			path: "/api/contacts/4",
			setupMocks: func(contacts *mocks.MockContactRepository) {
				contacts.On("FindByID", uint(4)).Return(&models.Contact{ID: 4}, nil)
				contacts.On("Delete", uint(4)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Contact deleted successfully",
		},
		{
			name: "contact not found",
			path: "/api/contacts/999",
			setupMocks: func(contacts *mocks.MockContactRepository) {
				contacts.On("FindByID", uint(999)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Contact not found",
		},
		{
			name: "store failure",
			path: "/api/contacts/4",
			setupMocks: func(contacts *mocks.MockContactRepository) {
				contacts.On("FindByID", uint(4)).Return(&models.Contact{ID: 4}, nil)
				contacts.On("Delete", uint(4)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to delete contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := new(mocks.MockContactRepository)
			tt.setupMocks(contacts)
			controller := NewContactController(contacts)

			router := setupTestRouter()
			router.DELETE("/api/contacts/:id", controller.DeleteContact)

			req := httptest.NewRequest("DELETE", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["message"], tt.expectedMsg)

			contacts.AssertExpectations(t)
		})
	}
}

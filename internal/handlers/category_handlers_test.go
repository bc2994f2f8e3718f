package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// --- Mock Service ---

type mockCategoryService struct {
	categories []models.Category
	category   *models.Category
	err        error

	lastCreatedName string
	lastUpdatedID   int64
	deletedID       int64
}

func (m *mockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	return m.categories, m.err
}

func (m *mockCategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return m.category, m.err
}

func (m *mockCategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	m.lastCreatedName = name
	return m.category, m.err
}

func (m *mockCategoryService) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	m.lastUpdatedID = id
	return m.category, m.err
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func performRequest(t *testing.T, h *Handlers, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/categories", h.GetAllCategories)
	router.GET("/api/categories/:id", h.GetCategory)
	router.POST("/api/categories", h.CreateCategory)
	router.PUT("/api/categories/:id", h.UpdateCategory)
	router.DELETE("/api/categories/:id", h.DeleteCategory)
	router.GET("/api/products", h.GetAllProducts)
	router.GET("/api/products/:id", h.GetProduct)
	router.GET("/api/products/category/:categoryId", h.GetProductsByCategory)
	router.POST("/api/products", h.CreateProduct)
	router.PUT("/api/products/:id", h.UpdateProduct)
	router.PATCH("/api/products/:id/stock", h.UpdateProductStock)
	router.DELETE("/api/products/:id", h.DeleteProduct)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// --- Tests ---

func TestGetAllCategoriesHandler(t *testing.T) {
	h := &Handlers{Categories: &mockCategoryService{
		categories: []models.Category{{ID: 1, Name: "Electronics"}},
	}}

	rec, env := performRequest(t, h, "GET", "/api/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data []models.Category
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 1)
	assert.Equal(t, "Electronics", data[0].Name)
}

func TestCreateCategoryHandler(t *testing.T) {
	testCases := []struct {
		name            string
		body            string
		serviceErr      error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Created",
			body:            `{"name":"Electronics"}`,
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Category created successfully",
		},
		{
			name:            "Validation error maps to 400",
			body:            `{"name":"  "}`,
			serviceErr:      apperrors.Validation("Category name is required"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Category name is required",
		},
		{
			name:            "Conflict maps to 409",
			body:            `{"name":"Electronics"}`,
			serviceErr:      apperrors.Conflict("Category with this name already exists"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Category with this name already exists",
		},
		{
			name:            "Unexpected error maps to 500",
			body:            `{"name":"Electronics"}`,
			serviceErr:      errors.New("db down"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "Malformed JSON",
			body:            `{invalid`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockCategoryService{
				category: &models.Category{ID: 1, Name: "Electronics"},
				err:      tc.serviceErr,
			}
			h := &Handlers{Categories: svc}

			rec, env := performRequest(t, h, "POST", "/api/categories", tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedStatus < 400, env.Success)
			assert.Equal(t, tc.expectedMessage, env.Message)
		})
	}
}

func TestGetCategoryHandler(t *testing.T) {
	t.Run("Not found maps to 404", func(t *testing.T) {
		h := &Handlers{Categories: &mockCategoryService{err: apperrors.NotFound("Category not found")}}

		rec, env := performRequest(t, h, "GET", "/api/categories/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Category not found", env.Message)
	})

	t.Run("Non-numeric id maps to 400", func(t *testing.T) {
		h := &Handlers{Categories: &mockCategoryService{}}

		rec, env := performRequest(t, h, "GET", "/api/categories/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Run("Blocked by associated products", func(t *testing.T) {
		h := &Handlers{Categories: &mockCategoryService{
			err: apperrors.Validation("Cannot delete category with associated products"),
		}}

		rec, env := performRequest(t, h, "DELETE", "/api/categories/1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Cannot delete category with associated products", env.Message)
	})

	t.Run("Deletion confirmation", func(t *testing.T) {
		svc := &mockCategoryService{}
		h := &Handlers{Categories: svc}

		rec, env := performRequest(t, h, "DELETE", "/api/categories/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Category deleted successfully", env.Message)
		assert.Equal(t, int64(1), svc.deletedID)
	})
}

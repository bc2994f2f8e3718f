package handlers

import (
	"net/http"

	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetAllCategories handles GET /api/categories.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", categories)
}

// GetCategory handles GET /api/categories/:id.
func (h *Handlers) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.Categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", category)
}

// CreateCategory handles POST /api/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	category, err := h.Categories.Update(c.Request.Context(), id, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/:id.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category deleted successfully", nil)
}

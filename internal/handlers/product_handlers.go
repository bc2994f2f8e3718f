package handlers

import (
	"net/http"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetAllProducts handles GET /api/products.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", products)
}

// GetProduct handles GET /api/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", product)
}

// GetProductsByCategory handles GET /api/products/category/:categoryId.
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	products, err := h.Products.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", products)
}

// CreateProduct handles POST /api/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	product, err := h.Products.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Product created successfully", product)
}

// UpdateProduct handles PUT /api/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	product, err := h.Products.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product updated successfully", product)
}

// UpdateProductStock handles PATCH /api/products/:id/stock. The body carries
// a signed quantity delta.
func (h *Handlers) UpdateProductStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.StockAdjustmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if input.Quantity == nil {
		respondError(c, apperrors.Validation("Quantity is required"))
		return
	}

	product, err := h.Products.AdjustStock(c.Request.Context(), id, *input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Stock updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product deleted successfully", nil)
}

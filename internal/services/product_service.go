package services

import (
	"context"
	"strings"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
)

// ProductStore is the persistence surface the product rules run against.
// Find*/mutation methods return (nil, nil) when no row matches.
type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	Insert(ctx context.Context, fields models.ProductFields) (*models.Product, error)
	Update(ctx context.Context, id int64, fields models.ProductFields) (*models.Product, error)
	Delete(ctx context.Context, id int64) (*models.Product, error)
	AdjustStock(ctx context.Context, id int64, quantity int) (*models.Product, error)
}

// ProductService enforces the product rules: required name and price,
// non-negative price and stock, and category existence on reference.
type ProductService struct {
	store      ProductStore
	categories CategoryStore
}

func NewProductService(store ProductStore, categories CategoryStore) *ProductService {
	return &ProductService{store: store, categories: categories}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return product, nil
}

// ListByCategory returns the products of an existing category, NotFound
// otherwise.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	if err := s.checkCategoryExists(ctx, &categoryID); err != nil {
		return nil, err
	}

	products, err := s.store.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	fields, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, fields.CategoryID); err != nil {
		return nil, err
	}

	return s.store.Insert(ctx, fields)
}

// Update replaces all mutable fields; the store refreshes updated_at.
func (s *ProductService) Update(ctx context.Context, id int64, input models.ProductInput) (*models.Product, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	fields, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, fields.CategoryID); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("Product not found")
	}

	_, err = s.store.Delete(ctx, id)
	return err
}

// AdjustStock applies a signed delta to the current stock. The pre-check
// here produces the friendly error; the store's conditional update re-checks
// non-negativity at write time, so a concurrent adjustment that would drive
// stock negative fails even after this pre-check passed.
func (s *ProductService) AdjustStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	if product.Stock+quantity < 0 {
		return nil, apperrors.Validation("Insufficient stock")
	}

	updated, err := s.store.AdjustStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// The conditional write matched no row: stock moved under us.
		return nil, apperrors.Validation("Insufficient stock")
	}
	return updated, nil
}

func (s *ProductService) checkCategoryExists(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categories.FindByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperrors.NotFound("Category not found")
	}
	return nil
}

// validateProductInput runs the write-time checks in order; the first
// failure wins.
func validateProductInput(input models.ProductInput) (models.ProductFields, error) {
	var fields models.ProductFields

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fields, apperrors.Validation("Product name is required")
	}

	if input.Price == nil {
		return fields, apperrors.Validation("Product price is required")
	}
	if input.Price.IsNegative() {
		return fields, apperrors.Validation("Product price must be a positive number")
	}

	// Absent stock defaults to 0 and is not validated.
	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return fields, apperrors.Validation("Product stock must be a non-negative integer")
		}
		stock = *input.Stock
	}

	fields.Name = name
	fields.Price = *input.Price
	fields.Stock = stock
	fields.CategoryID = input.CategoryID

	if input.Description != nil {
		if trimmed := strings.TrimSpace(*input.Description); trimmed != "" {
			fields.Description = &trimmed
		}
	}

	return fields, nil
}

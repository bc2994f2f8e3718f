package handlers

import (
	"context"

	"github.com/01moynul/inventory-golang/internal/models"
)

// CategoryProvider is the category service as seen by the HTTP layer.
type CategoryProvider interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ProductProvider is the product service as seen by the HTTP layer.
type ProductProvider interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, input models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, quantity int) (*models.Product, error)
}

// Handlers holds all dependencies for our handlers.
type Handlers struct {
	Categories CategoryProvider
	Products   ProductProvider
}

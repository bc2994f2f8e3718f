package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table.
// Nullable columns use pointers so they serialize as null instead of zero values.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	CategoryID  *int64          `json:"category_id" db:"category_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	// Join field populated by list/get queries (LEFT JOIN on categories).
	// Not a column of the products table.
	CategoryName *string `json:"category_name,omitempty" db:"-"`
}

// --- API Input Structs ---

// ProductInput is the body for POST /api/products and PUT /api/products/:id.
// Price and Stock are pointers so a missing field can be told apart from zero;
// the product service owns the validation rules and error messages.
type ProductInput struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *int64           `json:"category_id"`
}

// StockAdjustmentInput is the body for PATCH /api/products/:id/stock.
// Quantity is a signed delta applied to the current stock.
type StockAdjustmentInput struct {
	Quantity *int `json:"quantity"`
}

// ProductFields holds the validated column values the store writes.
// Built by the product service after trimming and range checks.
type ProductFields struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *int64
}

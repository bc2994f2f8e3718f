package models

import "time"

// Category defines the struct for the 'categories' table
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// --- API Input Structs ---

// CategoryInput is the body for POST /api/categories and PUT /api/categories/:id.
// Trimming and uniqueness rules live in the category service, not here.
type CategoryInput struct {
	Name string `json:"name"`
}

package database

import (
	"database/sql"
	"fmt"
	"log"
)

const createCategoriesTable = `
	CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		description TEXT,
		price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

const createCategoryIndex = `
	CREATE INDEX IF NOT EXISTS idx_products_category
	ON products(category_id)`

// CreateTables builds the categories and products tables plus the category
// index. All statements run inside a single transaction so a failure rolls
// back the whole batch.
func CreateTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{createCategoriesTable, createProductsTable, createCategoryIndex} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Println("Tables created successfully")
	return nil
}

// DropTables removes both tables. Products must go first because of the
// foreign key on category_id.
func DropTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS products CASCADE`,
		`DROP TABLE IF EXISTS categories CASCADE`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("dropping tables: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Println("Tables dropped successfully")
	return nil
}

// ResetTables drops and recreates the schema.
func ResetTables(db *sql.DB) error {
	if err := DropTables(db); err != nil {
		return err
	}
	return CreateTables(db)
}

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a UNIQUE constraint hit.
const uniqueViolation = "23505"

// CategoryStore executes row-level CRUD against the categories table.
type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// FindByID returns (nil, nil) when no row matches.
func (s *CategoryStore) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var cat models.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, id).
		Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// FindByName matches the exact (already trimmed) name, case-sensitively.
func (s *CategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE name = $1`, name).
		Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Insert persists a new category. The UNIQUE constraint on name is the real
// uniqueness guarantee; a violation surfaces as the same Conflict error the
// service pre-check produces, so concurrent duplicate creates stay friendly.
func (s *CategoryStore) Insert(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at`, name).
		Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return nil, translateCategoryError(err)
	}
	return &cat, nil
}

// Update renames a category. Returns (nil, nil) when the id does not exist.
func (s *CategoryStore) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	var cat models.Category
	err := s.db.QueryRowContext(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name, created_at`, name, id).
		Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateCategoryError(err)
	}
	return &cat, nil
}

// Delete removes a category. Returns (nil, nil) when the id does not exist.
func (s *CategoryStore) Delete(ctx context.Context, id int64) (*models.Category, error) {
	var cat models.Category
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM categories WHERE id = $1 RETURNING id, name, created_at`, id).
		Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// CountProducts reports how many products currently reference the category.
func (s *CategoryStore) CountProducts(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).
		Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func translateCategoryError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.Conflict("Category with this name already exists")
	}
	return err
}

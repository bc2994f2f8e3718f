package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/lib/pq"
)

// foreignKeyViolation is the PostgreSQL error code for a failed FK reference.
const foreignKeyViolation = "23503"

// ProductStore executes row-level CRUD against the products table. List and
// get queries join in the owning category's name.
type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productJoinQuery = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id,
	       p.created_at, p.updated_at, c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

const productReturning = `RETURNING id, name, description, price, stock, category_id, created_at, updated_at`

func (s *ProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, productJoinQuery+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByID returns (nil, nil) when no row matches.
func (s *ProductStore) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx, productJoinQuery+` WHERE p.id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt, &p.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) FindByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		productJoinQuery+` WHERE p.category_id = $1 ORDER BY p.id ASC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (s *ProductStore) Insert(ctx context.Context, fields models.ProductFields) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, price, stock, category_id)
		 VALUES ($1, $2, $3, $4, $5) `+productReturning,
		fields.Name, fields.Description, fields.Price, fields.Stock, fields.CategoryID).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translateProductError(err)
	}
	return &p, nil
}

// Update replaces all mutable fields and refreshes updated_at.
// Returns (nil, nil) when the id does not exist.
func (s *ProductStore) Update(ctx context.Context, id int64, fields models.ProductFields) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, stock = $4, category_id = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6 `+productReturning,
		fields.Name, fields.Description, fields.Price, fields.Stock, fields.CategoryID, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateProductError(err)
	}
	return &p, nil
}

// Delete removes a product. Returns (nil, nil) when the id does not exist.
func (s *ProductStore) Delete(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM products WHERE id = $1 `+productReturning, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdjustStock applies a signed delta in a single conditional UPDATE. The
// stock >= 0 condition is re-checked at write time, so concurrent
// adjustments cannot drive stock negative regardless of the service
// pre-check. Returns (nil, nil) when no row satisfied the condition.
func (s *ProductStore) AdjustStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx,
		`UPDATE products
		 SET stock = stock + $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2 AND stock + $1 >= 0 `+productReturning,
		quantity, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func translateProductError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		// The referenced category vanished between the service pre-check
		// and the write.
		return apperrors.NotFound("Category not found")
	}
	return err
}

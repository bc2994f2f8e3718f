package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "description", "price", "stock", "category_id",
	"created_at", "updated_at", "category_name",
}

func newProductStoreWithMock(t *testing.T) (*ProductStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProductStore(db), mock
}

func TestProductStoreFindAll(t *testing.T) {
	store, mock := newProductStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN categories c ON p.category_id = c.id`)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(1, "Laptop", "15 inch", "999.99", 10, 5, now, now, "Electronics").
			AddRow(2, "Loose Screw", nil, "0.10", 1000, nil, now, now, nil))

	products, err := store.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Laptop", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("999.99")))
	assert.Equal(t, "Electronics", *products[0].CategoryName)

	// Left join: a product without a category carries null fields.
	assert.Nil(t, products[1].Description)
	assert.Nil(t, products[1].CategoryID)
	assert.Nil(t, products[1].CategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductStoreFindByID(t *testing.T) {
	store, mock := newProductStoreWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	product, err := store.FindByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductStoreInsert(t *testing.T) {
	t.Run("Returns the persisted row", func(t *testing.T) {
		store, mock := newProductStoreWithMock(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (name, description, price, stock, category_id)`)).
			WithArgs("Laptop", nil, sqlmock.AnyArg(), 10, int64(5)).
			WillReturnRows(sqlmock.NewRows(productColumns[:8]).
				AddRow(1, "Laptop", nil, "999.99", 10, 5, now, now))

		categoryID := int64(5)
		product, err := store.Insert(context.Background(), models.ProductFields{
			Name:       "Laptop",
			Price:      decimal.RequireFromString("999.99"),
			Stock:      10,
			CategoryID: &categoryID,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, int64(5), *product.CategoryID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Foreign key violation maps to NotFound", func(t *testing.T) {
		store, mock := newProductStoreWithMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
			WillReturnError(&pq.Error{Code: "23503"})

		categoryID := int64(99)
		_, err := store.Insert(context.Background(), models.ProductFields{
			Name:       "Laptop",
			Price:      decimal.RequireFromString("999.99"),
			CategoryID: &categoryID,
		})

		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		assert.EqualError(t, err, "Category not found")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductStoreAdjustStock(t *testing.T) {
	t.Run("Applies the delta and refreshes updated_at", func(t *testing.T) {
		store, mock := newProductStoreWithMock(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SET stock = stock + $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2 AND stock + $1 >= 0`)).
			WithArgs(-4, int64(1)).
			WillReturnRows(sqlmock.NewRows(productColumns[:8]).
				AddRow(1, "Laptop", nil, "999.99", 6, nil, now, now))

		product, err := store.AdjustStock(context.Background(), 1, -4)

		assert.NoError(t, err)
		assert.Equal(t, 6, product.Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed non-negativity condition yields nil without error", func(t *testing.T) {
		store, mock := newProductStoreWithMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`AND stock + $1 >= 0`)).
			WithArgs(-1000, int64(1)).
			WillReturnError(sql.ErrNoRows)

		product, err := store.AdjustStock(context.Background(), 1, -1000)

		assert.NoError(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductStoreDelete(t *testing.T) {
	store, mock := newProductStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(productColumns[:8]).
			AddRow(1, "Laptop", nil, "999.99", 10, nil, now, now))

	product, err := store.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

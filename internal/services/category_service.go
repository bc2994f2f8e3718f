package services

import (
	"context"
	"strings"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/01moynul/inventory-golang/internal/models"
)

// CategoryStore is the persistence surface the category rules run against.
// Find* methods return (nil, nil) when no row matches.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Insert(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, id int64) (*models.Category, error)
	CountProducts(ctx context.Context, categoryID int64) (int, error)
}

// CategoryService enforces the category rules: name required and unique
// (trimmed, case-sensitive), delete only when no product references the
// category.
type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NotFound("Category not found")
	}
	return category, nil
}

// Create persists a category with the trimmed name. The duplicate pre-check
// gives a friendly error; the UNIQUE constraint in the store is the actual
// guarantee under concurrency.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.Validation("Category name is required")
	}

	existing, err := s.store.FindByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Category with this name already exists")
	}

	return s.store.Insert(ctx, trimmed)
}

// Update renames a category. Renaming a category to its own current name is
// not a conflict: the duplicate check excludes the record's own id.
func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.Validation("Category name is required")
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Category not found")
	}

	duplicate, err := s.store.FindByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if duplicate != nil && duplicate.ID != id {
		return nil, apperrors.Conflict("Category with this name already exists")
	}

	updated, err := s.store.Update(ctx, id, trimmed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Category not found")
	}
	return updated, nil
}

// Delete removes a category, refusing while any product still references it.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("Category not found")
	}

	count, err := s.store.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("Cannot delete category with associated products")
	}

	_, err = s.store.Delete(ctx, id)
	return err
}

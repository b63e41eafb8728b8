package service

import (
	"context"
	"errors"
	"fmt"

	"go-sales-console/internal/model"
	"go-sales-console/internal/repository"
	"go-sales-console/pkg/validator"
)

// ErrCategoryHasProducts blocks deletion of a non-empty category. The
// surrounding UI disables the action too, but the check lives here.
var ErrCategoryHasProducts = errors.New("this category contains products; remove or reassign the products first")

type CatalogService interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, id string, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetAllCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, id string, c *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CanDeleteCategory(c model.Category) bool
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository) CatalogService {
	return &catalogService{productRepo: pRepo, categoryRepo: cRepo}
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, p *model.Product) error {
	if errs := validator.ValidateStruct(p); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return s.productRepo.Create(ctx, p)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, p *model.Product) error {
	if errs := validator.ValidateStruct(p); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return s.productRepo.Update(ctx, id, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, c *model.Category) error {
	if errs := validator.ValidateStruct(c); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return s.categoryRepo.Create(ctx, c)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, c *model.Category) error {
	return s.categoryRepo.Update(ctx, id, c)
}

// DeleteCategory refuses when the category still embeds products. The
// category list is fetched fresh so the check runs against current state.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID == id && !s.CanDeleteCategory(c) {
			return ErrCategoryHasProducts
		}
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) CanDeleteCategory(c model.Category) bool {
	return !c.HasProducts()
}

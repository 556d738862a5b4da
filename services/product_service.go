package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// ProductService serves the storefront catalog. Lookups accept either a UUID
// or a slug so product pages can link by human-readable path.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, idOrSlug string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	ListAccessories(ctx context.Context) ([]models.Accessory, error)
	GetAccessory(ctx context.Context, id uuid.UUID) (*models.Accessory, error)
	CreateAccessory(ctx context.Context, accessory *models.Accessory) error
	UpdateAccessory(ctx context.Context, accessory *models.Accessory) error
	DeactivateAccessory(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{productRepo: productRepo, logger: logger}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list products", err)
	}
	return products, nil
}

func (s *productService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.FindFeatured(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list featured products", err)
	}
	return products, nil
}

func (s *productService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.Internal("failed to list products", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, idOrSlug string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		product, err = s.productRepo.FindByID(ctx, id)
	} else {
		product, err = s.productRepo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal("failed to load product", err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return apperrors.Internal("failed to create product", err)
	}
	s.logger.Info("product created",
		zap.String("productId", product.ID.String()),
		zap.String("slug", product.Slug))
	return nil
}

func (s *productService) Update(ctx context.Context, product *models.Product) error {
	if err := s.productRepo.Update(ctx, product); err != nil {
		return apperrors.Internal("failed to update product", err)
	}
	return nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	rows, err := s.productRepo.Deactivate(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to deactivate product", err)
	}
	if rows == 0 {
		return apperrors.NotFound("product not found")
	}
	return nil
}

func (s *productService) ListAccessories(ctx context.Context) ([]models.Accessory, error) {
	accessories, err := s.productRepo.FindAccessories(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list accessories", err)
	}
	return accessories, nil
}

func (s *productService) GetAccessory(ctx context.Context, id uuid.UUID) (*models.Accessory, error) {
	accessory, err := s.productRepo.FindAccessoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("accessory not found")
		}
		return nil, apperrors.Internal("failed to load accessory", err)
	}
	return accessory, nil
}

func (s *productService) CreateAccessory(ctx context.Context, accessory *models.Accessory) error {
	if err := s.productRepo.CreateAccessory(ctx, accessory); err != nil {
		return apperrors.Internal("failed to create accessory", err)
	}
	return nil
}

func (s *productService) UpdateAccessory(ctx context.Context, accessory *models.Accessory) error {
	if err := s.productRepo.UpdateAccessory(ctx, accessory); err != nil {
		return apperrors.Internal("failed to update accessory", err)
	}
	return nil
}

func (s *productService) DeactivateAccessory(ctx context.Context, id uuid.UUID) error {
	rows, err := s.productRepo.DeactivateAccessory(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to deactivate accessory", err)
	}
	if rows == 0 {
		return apperrors.NotFound("accessory not found")
	}
	return nil
}

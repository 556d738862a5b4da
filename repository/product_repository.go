package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindFeatured(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)

	FindAccessories(ctx context.Context) ([]models.Accessory, error)
	FindAccessoryByID(ctx context.Context, id uuid.UUID) (*models.Accessory, error)
	CreateAccessory(ctx context.Context, accessory *models.Accessory) error
	UpdateAccessory(ctx context.Context, accessory *models.Accessory) error
	DeactivateAccessory(ctx context.Context, id uuid.UUID) (int64, error)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// listing queries preload only the association sets the storefront renders;
// specifications and features ride along on single-product reads.
func (r *GormProductRepository) withListAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Variants", "is_active = ?", true).
		Preload("Colors", "is_active = ?", true).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		})
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.withListAssociations(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.withListAssociations(ctx).
		Preload("Specifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.withListAssociations(ctx).
		Preload("Specifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.withListAssociations(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := r.withListAssociations(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Deactivate soft-deletes: the row stays for order history, the storefront
// stops listing it.
func (r *GormProductRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *GormProductRepository) FindAccessories(ctx context.Context) ([]models.Accessory, error) {
	var accessories []models.Accessory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&accessories).Error
	return accessories, err
}

func (r *GormProductRepository) FindAccessoryByID(ctx context.Context, id uuid.UUID) (*models.Accessory, error) {
	var accessory models.Accessory
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&accessory).Error
	if err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (r *GormProductRepository) CreateAccessory(ctx context.Context, accessory *models.Accessory) error {
	return r.db.WithContext(ctx).Create(accessory).Error
}

func (r *GormProductRepository) UpdateAccessory(ctx context.Context, accessory *models.Accessory) error {
	return r.db.WithContext(ctx).Save(accessory).Error
}

func (r *GormProductRepository) DeactivateAccessory(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Accessory{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

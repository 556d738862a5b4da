package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is soft-deleted via IsActive; hard deletes are never issued.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Slug          string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description   string    `gorm:"type:text" json:"description"`
	Category      string    `gorm:"size:100;not null;default:'scooter'" json:"category"`
	BasePrice     float64   `gorm:"type:decimal(10,2);not null" json:"base_price"`
	OriginalPrice *float64  `gorm:"type:decimal(10,2)" json:"original_price"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	Rating        float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewCount   int       `gorm:"default:0" json:"review_count"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Variants       []ProductVariant       `gorm:"foreignKey:ProductID" json:"variants"`
	Colors         []ProductColor         `gorm:"foreignKey:ProductID" json:"colors"`
	Images         []ProductImage         `gorm:"foreignKey:ProductID" json:"images"`
	Specifications []ProductSpecification `gorm:"foreignKey:ProductID" json:"specifications,omitempty"`
	Features       []ProductFeature       `gorm:"foreignKey:ProductID" json:"features,omitempty"`
}

type ProductVariant struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	BatteryCapacity string    `gorm:"size:50" json:"battery_capacity"`
	RangeKM         int       `json:"range_km"`
	TopSpeedKMH     int       `json:"top_speed_kmh"`
	AccelerationSec float64   `gorm:"type:decimal(4,2)" json:"acceleration_sec"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsNew           bool      `gorm:"default:false" json:"is_new"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
}

type ProductColor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	ColorCode string    `gorm:"size:20" json:"color_code"`
	CSSFilter string    `gorm:"size:255" json:"css_filter"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
}

type ProductImage struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	AltText      string    `gorm:"size:255" json:"alt_text"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsPrimary    bool      `gorm:"default:false" json:"is_primary"`
}

type ProductSpecification struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	SpecName     string    `gorm:"size:100;not null" json:"spec_name"`
	SpecValue    string    `gorm:"size:255;not null" json:"spec_value"`
	SpecUnit     string    `gorm:"size:50" json:"spec_unit"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
}

type ProductFeature struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID          uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	FeatureName        string    `gorm:"size:255;not null" json:"feature_name"`
	FeatureDescription string    `gorm:"type:text" json:"feature_description"`
	DisplayOrder       int       `gorm:"default:0" json:"display_order"`
}

// Accessory shares the product soft-delete lifecycle.
type Accessory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Migrate creates every table the API touches.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&OTP{},
		&Product{},
		&ProductVariant{},
		&ProductColor{},
		&ProductImage{},
		&ProductSpecification{},
		&ProductFeature{},
		&Accessory{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
		&Review{},
		&ContactMessage{},
		&UserActivity{},
	)
}

package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type ProductController struct {
	products services.ProductService
	logger   *zap.Logger
}

func NewProductController(products services.ProductService, logger *zap.Logger) *ProductController {
	return &ProductController{products: products, logger: logger}
}

func (ctl *ProductController) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products, err := ctl.products.ListByCategory(c.Request.Context(), category)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, products)
		return
	}
	products, err := ctl.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, products)
}

func (ctl *ProductController) ListFeatured(c *gin.Context) {
	products, err := ctl.products.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, products)
}

func (ctl *ProductController) Get(c *gin.Context) {
	product, err := ctl.products.Get(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (ctl *ProductController) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondValidation(c, err)
		return
	}
	if err := ctl.products.Create(c.Request.Context(), &product); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, product)
}

func (ctl *ProductController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid product id"))
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondValidation(c, err)
		return
	}
	product.ID = id
	if err := ctl.products.Update(c.Request.Context(), &product); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (ctl *ProductController) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid product id"))
		return
	}
	if err := ctl.products.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "product deactivated")
}

func (ctl *ProductController) ListAccessories(c *gin.Context) {
	accessories, err := ctl.products.ListAccessories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, accessories)
}

func (ctl *ProductController) GetAccessory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid accessory id"))
		return
	}
	accessory, err := ctl.products.GetAccessory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, accessory)
}

func (ctl *ProductController) CreateAccessory(c *gin.Context) {
	var accessory models.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		respondValidation(c, err)
		return
	}
	if err := ctl.products.CreateAccessory(c.Request.Context(), &accessory); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, accessory)
}

func (ctl *ProductController) UpdateAccessory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid accessory id"))
		return
	}
	var accessory models.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		respondValidation(c, err)
		return
	}
	accessory.ID = id
	if err := ctl.products.UpdateAccessory(c.Request.Context(), &accessory); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, accessory)
}

func (ctl *ProductController) DeactivateAccessory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid accessory id"))
		return
	}
	if err := ctl.products.DeactivateAccessory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "accessory deactivated")
}

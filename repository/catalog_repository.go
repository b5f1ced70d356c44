package repository

import (
	"errors"

	"github.com/itsmelouis/kiosko/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GET /menu/categories
func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("position ASC").Find(&cats).Error
	return cats, err
}

// GET /menu/products → only what the kiosk can sell right now
func (r *CatalogRepository) ListAvailableProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_available = ?", true).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *CatalogRepository) ListProductsByCategory(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("id ASC").Find(&products).Error
	return products, err
}

// GetProductByID returns nil (no error) when the product does not exist.
func (r *CatalogRepository) GetProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) GetOptionsForProduct(productID uint) ([]entity.ProductOption, error) {
	var opts []entity.ProductOption
	err := r.DB.Where("product_id = ?", productID).Order("sort_order ASC").Find(&opts).Error
	return opts, err
}

// GetOptionsByIDs resolves the option rows a kiosk selection refers to,
// scoped to the product so a selection cannot smuggle another product's
// option in.
func (r *CatalogRepository) GetOptionsByIDs(productID uint, ids []uint) ([]entity.ProductOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []entity.ProductOption
	err := r.DB.Where("product_id = ? AND id IN ?", productID, ids).Find(&opts).Error
	return opts, err
}

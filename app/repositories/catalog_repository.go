package repositories

import (
	"context"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/flashsale"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/preorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/rental"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"

	"gorm.io/gorm"
)

// CatalogRepository read access to the product catalogs. The checkout
// orchestrator resolves prices and stock through this type.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates the repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		db: database.DB,
	}
}

// Products lists available products, optionally filtered by category slug
func (r *CatalogRepository) Products(ctx context.Context, categorySlug string) ([]product.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_available = ?", true)
	if categorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	var products []product.Product
	err := query.Find(&products).Error
	return products, err
}

// GetProduct loads one product
func (r *CatalogRepository) GetProduct(ctx context.Context, id uint64) (*product.Product, error) {
	var prod product.Product
	if err := r.db.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// Categories lists every category
func (r *CatalogRepository) Categories(ctx context.Context) ([]product.Category, error) {
	var categories []product.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// RentalProducts lists available rental products
func (r *CatalogRepository) RentalProducts(ctx context.Context) ([]rental.RentalProduct, error) {
	var products []rental.RentalProduct
	err := r.db.WithContext(ctx).Where("available = ?", true).Find(&products).Error
	return products, err
}

// GetRentalProduct loads one rental product
func (r *CatalogRepository) GetRentalProduct(ctx context.Context, id uint64) (*rental.RentalProduct, error) {
	var prod rental.RentalProduct
	if err := r.db.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// FlashSaleProducts lists flash sale products
func (r *CatalogRepository) FlashSaleProducts(ctx context.Context) ([]flashsale.FlashSaleProduct, error) {
	var products []flashsale.FlashSaleProduct
	err := r.db.WithContext(ctx).Where("available = ?", true).Find(&products).Error
	return products, err
}

// GetFlashSaleProduct loads one flash sale product
func (r *CatalogRepository) GetFlashSaleProduct(ctx context.Context, id uint64) (*flashsale.FlashSaleProduct, error) {
	var prod flashsale.FlashSaleProduct
	if err := r.db.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// PreOrderProducts lists active pre-order products
func (r *CatalogRepository) PreOrderProducts(ctx context.Context) ([]preorder.PreOrderProduct, error) {
	var products []preorder.PreOrderProduct
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&products).Error
	return products, err
}

// GetPreOrderProduct loads one pre-order product
func (r *CatalogRepository) GetPreOrderProduct(ctx context.Context, id uint64) (*preorder.PreOrderProduct, error) {
	var prod preorder.PreOrderProduct
	if err := r.db.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

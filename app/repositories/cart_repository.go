package repositories

import (
	"context"
	"errors"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"

	"gorm.io/gorm"
)

// ErrInsufficientStock the product cannot cover the requested quantity
var ErrInsufficientStock = errors.New("insufficient stock available")

// CartRepository cart line access
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the repository
func NewCartRepository() *CartRepository {
	return &CartRepository{
		db: database.DB,
	}
}

// ItemsForUser returns the user's cart lines with their products loaded
func (r *CartRepository) ItemsForUser(ctx context.Context, userID uint64) ([]product.CartItem, error) {
	var items []product.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// AddProduct adds a regular product to the cart, or bumps the quantity
// of an existing line, capped by stock.
func (r *CartRepository) AddProduct(ctx context.Context, userID uint64, prod *product.Product) (*product.CartItem, error) {
	var item product.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_type = ? AND product_id = ?",
			userID, product.TypeRegular, prod.ID).
		First(&item).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = product.CartItem{
			UserID:      userID,
			ProductType: product.TypeRegular,
			ProductID:   prod.ID,
			Quantity:    1,
		}
		if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	case err != nil:
		return nil, err
	}

	if prod.Stock <= item.Quantity {
		return &item, ErrInsufficientStock
	}
	item.Quantity++
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem loads one cart line owned by the user
func (r *CartRepository) GetItem(ctx context.Context, userID, itemID uint64) (*product.CartItem, error) {
	var item product.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Save persists a cart line
func (r *CartRepository) Save(ctx context.Context, item *product.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a cart line
func (r *CartRepository) Delete(ctx context.Context, item *product.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

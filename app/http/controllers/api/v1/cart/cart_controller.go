// Package cart exposes the shopping cart endpoints
package cart

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/middlewares"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/repositories"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/requests"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"

	"github.com/shopspring/decimal"
)

// CartController cart line management
type CartController struct {
	carts   *repositories.CartRepository
	catalog *repositories.CatalogRepository
}

// NewCartController creates the controller
func NewCartController() *CartController {
	return &CartController{
		carts:   repositories.NewCartRepository(),
		catalog: repositories.NewCatalogRepository(),
	}
}

// Index lists the user's cart with a running total
func (ctrl *CartController) Index(c *gin.Context) {
	items, err := ctrl.carts.ItemsForUser(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	response.Data(c, gin.H{
		"items": items,
		"total": total,
	})
}

// Store adds a regular product to the cart, bumping the quantity when
// the line already exists. The product id rides in the path.
func (ctrl *CartController) Store(c *gin.Context) {
	productID := cast.ToUint64(c.Param("product_id"))
	if productID == 0 {
		response.Abort400(c, "Invalid product id")
		return
	}

	prod, err := ctrl.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		response.Abort404(c, "Product not found")
		return
	}
	if !prod.InStock(1) {
		response.Abort400(c, "Product is out of stock")
		return
	}

	item, err := ctrl.carts.AddProduct(c.Request.Context(), middlewares.CurrentUserID(c), prod)
	if errors.Is(err, repositories.ErrInsufficientStock) {
		response.Abort400(c, "No more stock available for this product")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Created(c, item, "Added to cart")
}

// Update sets a cart line's quantity, capped by the product's stock
func (ctrl *CartController) Update(c *gin.Context) {
	request, err := requests.ValidateUpdateCartItem(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid quantity")
		return
	}

	item, err := ctrl.carts.GetItem(c.Request.Context(), middlewares.CurrentUserID(c), cast.ToUint64(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Cart item not found")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	if item.ProductType == product.TypeRegular &&
		item.Product != nil && !item.Product.InStock(request.Quantity) {
		response.Abort400(c, "Requested quantity exceeds available stock")
		return
	}

	item.Quantity = request.Quantity
	if err := ctrl.carts.Save(c.Request.Context(), item); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, item)
}

// Destroy removes a cart line
func (ctrl *CartController) Destroy(c *gin.Context) {
	item, err := ctrl.carts.GetItem(c.Request.Context(), middlewares.CurrentUserID(c), cast.ToUint64(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Cart item not found")
		return
	}
	if err != nil {
		response.ServerError(c, err)
		return
	}

	if err := ctrl.carts.Delete(c.Request.Context(), item); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, gin.H{"deleted": true})
}

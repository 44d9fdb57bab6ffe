// Package products exposes the regular product catalog
package products

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/repositories"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"
)

// ProductsController catalog read endpoints
type ProductsController struct {
	catalog *repositories.CatalogRepository
}

// NewProductsController creates the controller
func NewProductsController() *ProductsController {
	return &ProductsController{
		catalog: repositories.NewCatalogRepository(),
	}
}

// Index lists available products, ?category=slug filters by category
func (ctrl *ProductsController) Index(c *gin.Context) {
	products, err := ctrl.catalog.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, products)
}

// Show returns one product
func (ctrl *ProductsController) Show(c *gin.Context) {
	prod, err := ctrl.catalog.GetProduct(c.Request.Context(), cast.ToUint64(c.Param("id")))
	if err != nil {
		response.Abort404(c, "Product not found")
		return
	}
	response.Data(c, prod)
}

// Categories lists every category
func (ctrl *ProductsController) Categories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, categories)
}

// Package routes registers the HTTP API routes
package routes

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/cart"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/flashsales"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/payments"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/preorders"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/products"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1/rentals"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/middlewares"

	"github.com/gin-gonic/gin"
)

// Route level rate limits
const (
	// global limit per IP
	GlobalRateLimit = "30000-H"
	// checkout initiation hits the gateway, keep it tight
	CheckoutLimit = "60-H"
	// gateway callbacks, retried by SSLCommerz on failures
	CallbackLimit = "600-M"
	// catalog browsing
	BrowseLimit = "1000-M"
)

// RegisterAPIRoutes registers every API route
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
		middlewares.StartSession(),
		middlewares.Identity(),
	)

	// catalog, open to anonymous browsing
	{
		pc := products.NewProductsController()
		v1.GET("/products", middlewares.LimitPerRoute(BrowseLimit), pc.Index)
		v1.GET("/products/:id", middlewares.LimitPerRoute(BrowseLimit), pc.Show)
		v1.GET("/categories", middlewares.LimitPerRoute(BrowseLimit), pc.Categories)
	}

	// cart, needs a signed in user
	cartRoutes := v1.Group("/cart", middlewares.AuthRequired())
	{
		cc := cart.NewCartController()
		cartRoutes.GET("", cc.Index)
		cartRoutes.POST("/:product_id", cc.Store)
		cartRoutes.PUT("/:id", cc.Update)
		cartRoutes.DELETE("/:id", cc.Destroy)
	}

	// checkout initiation
	{
		ckc := payments.NewCheckoutController()

		// pay for the whole cart
		v1.POST("/checkout",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CheckoutLimit),
			ckc.Store,
		)

		// buy one product directly, skipping the cart
		v1.POST("/checkout/product/:id",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CheckoutLimit),
			ckc.StoreProduct,
		)
	}

	// rentals
	rentalRoutes := v1.Group("/rentals")
	{
		rc := rentals.NewRentalsController()
		rentalRoutes.GET("", middlewares.LimitPerRoute(BrowseLimit), rc.Index)
		rentalRoutes.GET("/:id", middlewares.LimitPerRoute(BrowseLimit), rc.Show)
		rentalRoutes.POST("/:id/checkout",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CheckoutLimit),
			rc.Checkout,
		)
	}

	// flash sales
	flashSaleRoutes := v1.Group("/flash-sales")
	{
		fc := flashsales.NewFlashSalesController()
		flashSaleRoutes.GET("", middlewares.LimitPerRoute(BrowseLimit), fc.Index)
		flashSaleRoutes.GET("/:id", middlewares.LimitPerRoute(BrowseLimit), fc.Show)
		flashSaleRoutes.POST("/:id/checkout",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CheckoutLimit),
			fc.Checkout,
		)
	}

	// pre-orders
	preOrderRoutes := v1.Group("/preorders")
	{
		poc := preorders.NewPreOrdersController()
		preOrderRoutes.GET("", middlewares.LimitPerRoute(BrowseLimit), poc.Index)
		preOrderRoutes.GET("/:id", middlewares.LimitPerRoute(BrowseLimit), poc.Show)
		preOrderRoutes.POST("/:id/checkout",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CheckoutLimit),
			poc.Checkout,
		)
	}

	// gateway callbacks; SSLCommerz posts these, no user auth applies.
	// Success and fail also accept GET for sandbox redirect flows.
	paymentRoutes := v1.Group("/payments")
	{
		pyc := payments.NewPaymentController()

		sslczRoutes := paymentRoutes.Group("/sslcz", middlewares.LimitPerRoute(CallbackLimit))
		{
			sslczRoutes.POST("/success", pyc.Success)
			sslczRoutes.GET("/success", pyc.Success)
			sslczRoutes.POST("/fail", pyc.Fail)
			sslczRoutes.GET("/fail", pyc.Fail)
			sslczRoutes.POST("/cancel", pyc.Cancel)
			sslczRoutes.GET("/cancel", pyc.Cancel)
			sslczRoutes.POST("/ipn", pyc.IPN)
		}

		// operator listing and fulfillment replay
		paymentRoutes.GET("", middlewares.AuthRequired(), pyc.Index)
		paymentRoutes.POST("/:id/fulfillment", middlewares.AuthRequired(), pyc.RetryFulfillment)
	}
}

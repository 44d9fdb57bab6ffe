package bootstrap

import (
	"net/http"
	"strings"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/middlewares"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/routes"

	"github.com/gin-gonic/gin"
)

// SetupRoute wires the HTTP surface: global middleware, the API routes
// and the 404 handler.
func SetupRoute(router *gin.Engine) {
	registerGlobalMiddleWare(router)

	routes.RegisterAPIRoutes(router)

	setup404Handler(router)
}

func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),
		middlewares.Recovery(),
	)
}

func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		acceptString := c.Request.Header.Get("Accept")

		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "404 Not Found")
		} else {
			c.JSON(http.StatusNotFound, gin.H{
				"error_code":    404,
				"error_message": "Route not defined, check the URL and request method.",
			})
		}
	})
}

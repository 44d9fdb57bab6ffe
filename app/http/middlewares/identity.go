package middlewares

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// Gin context keys holding the authenticated identity. Authentication
// itself happens upstream; the edge proxy forwards the verified identity
// in headers.
const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"
)

// Identity copies the upstream-verified identity headers onto the gin
// context. Anonymous requests pass through with a zero user id.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, cast.ToUint64(c.GetHeader("X-User-ID")))
		c.Set(UserNameKey, c.GetHeader("X-User-Name"))
		c.Set(UserEmailKey, c.GetHeader("X-User-Email"))
		c.Next()
	}
}

// AuthRequired rejects anonymous requests. Cart and checkout need a
// user; the catalog does not.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetUint64(UserIDKey) == 0 {
			response.Abort401(c)
			return
		}
		c.Next()
	}
}

// CurrentUserID the authenticated user's id, zero for anonymous
func CurrentUserID(c *gin.Context) uint64 {
	return c.GetUint64(UserIDKey)
}

// Package v1 holds shared pieces for the v1 API controllers
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/middlewares"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/checkout"
)

// ActorFrom builds the checkout actor from the request's identity and
// session middleware state.
func ActorFrom(c *gin.Context) checkout.Actor {
	return checkout.Actor{
		UserID:    middlewares.CurrentUserID(c),
		Name:      c.GetString(middlewares.UserNameKey),
		Email:     c.GetString(middlewares.UserEmailKey),
		SessionID: middlewares.SessionID(c),
	}
}

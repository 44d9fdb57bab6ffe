package middlewares

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie the cookie carrying the browser session id
const SessionCookie = "ff_session"

// SessionIDKey gin context key holding the session id
const SessionIDKey = "session_id"

// StartSession issues a session id cookie when the request lacks one and
// exposes the id on the gin context for the checkout handlers.
func StartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(
				SessionCookie,
				sessionID,
				config.GetInt("session.lifetime", 7200),
				"/",
				"",
				false,
				true,
			)
		}
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID reads the session id placed by StartSession, "" when the
// middleware did not run.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

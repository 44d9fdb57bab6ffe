package middlewares

import (
	"net"
	"net/http/httputil"
	"os"
	"strings"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into logged 500 responses instead of dropped
// connections. Broken pipes are logged and abandoned without a response
// since the client is already gone.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				httpRequest, _ := httputil.DumpRequest(c.Request, true)

				var brokenPipe bool
				if ne, ok := err.(*net.OpError); ok {
					if se, ok := ne.Err.(*os.SyscallError); ok {
						errStr := strings.ToLower(se.Error())
						if strings.Contains(errStr, "broken pipe") ||
							strings.Contains(errStr, "connection reset by peer") {
							brokenPipe = true
						}
					}
				}

				logger.Error("recovery from panic",
					zap.Time("time", time.Now()),
					zap.Any("error", err),
					zap.String("request", string(httpRequest)),
					zap.Stack("stacktrace"),
				)

				if brokenPipe {
					c.Error(err.(error))
					c.Abort()
					return
				}

				response.Abort500(c)
			}
		}()
		c.Next()
	}
}

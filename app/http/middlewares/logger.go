package middlewares

import (
	"bytes"
	"io"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Logger records every request with zap: method, path, status, latency
// and, on errors, the request and response bodies.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &responseBodyWriter{
			body:           &bytes.Buffer{},
			ResponseWriter: c.Writer,
		}
		c.Writer = w

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		start := time.Now()
		c.Next()

		cost := time.Since(start)
		status := c.Writer.Status()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.String("request", c.Request.Method+" "+c.Request.URL.String()),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
			zap.String("time", cost.String()),
		}
		if c.Request.Method == "POST" || c.Request.Method == "PUT" || c.Request.Method == "DELETE" {
			logFields = append(logFields, zap.String("Request Body", string(requestBody)))
		}

		switch {
		case status > 400 && status <= 499:
			logger.Warn("HTTP Warning "+cast.ToString(status), logFields...)
		case status >= 500:
			logFields = append(logFields, zap.String("Response Body", w.body.String()))
			logger.Error("HTTP Error "+cast.ToString(status), logFields...)
		default:
			logger.Debug("HTTP Access Log", logFields...)
		}
	}
}

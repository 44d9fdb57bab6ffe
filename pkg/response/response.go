// Package response provides unified HTTP response helpers
package response

import (
	"net/http"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Response statuses
const (
	Success = "success"
	Error   = "error"
)

/* Standard response shape
{
    "status": "success",
    "data": {},     // payload on success
    "error": "",    // error detail on failure
    "message": "",  // human readable message
}
*/

// Response unified response body
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ------------------ success responses ------------------

// Data responds 200 with a payload
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: Success,
		Data:   data,
	})
}

// JSON responds 200 with a raw body
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created responds 201
func Created(c *gin.Context, data interface{}, msg ...string) {
	c.JSON(http.StatusCreated, Response{
		Status:  Success,
		Message: getMsg("Created", msg...),
		Data:    data,
	})
}

// ------------------ error responses ------------------

// Abort400 responds 400
func Abort400(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  Error,
		Message: getMsg("Invalid request parameters", msg...),
	})
}

// Abort401 responds 401
func Abort401(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Status:  Error,
		Message: getMsg("Authentication required", msg...),
	})
}

// Abort404 responds 404
func Abort404(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Response{
		Status:  Error,
		Message: getMsg("Resource not found", msg...),
	})
}

// Abort500 responds 500
func Abort500(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  Error,
		Message: getMsg("Internal server error", msg...),
	})
}

// BadRequest responds 400 with the error attached
func BadRequest(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  Error,
		Message: getMsg("Malformed request", msg...),
		Error:   err.Error(),
	})
}

// ServerError responds 500 with the error attached
func ServerError(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  Error,
		Message: getMsg("Internal server error", msg...),
		Error:   err.Error(),
	})
}

// ValidationError responds 422 with field errors
func ValidationError(c *gin.Context, errors map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{
		Status:  Error,
		Message: "Validation failed",
		Data:    errors,
	})
}

func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return defaultMsg
}

// Package requests handles request binding and form validation
package requests

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ValidationError carries per-field validation messages
type ValidationError struct {
	Errors url.Values
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", v.Errors)
}

// validate runs govalidator over an already bound struct
func validate(data interface{}, rules govalidator.MapData, messages govalidator.MapData) error {
	opts := govalidator.Options{
		Data:          data,
		Rules:         rules,
		TagIdentifier: "valid",
		Messages:      messages,
	}

	if errs := govalidator.New(opts).ValidateStruct(); len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// bindAndValidate binds the JSON body and validates it in one step
func bindAndValidate(c *gin.Context, req interface{}, rules govalidator.MapData, messages govalidator.MapData) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("failed to parse request body: %w", err)
	}
	return validate(req, rules, messages)
}

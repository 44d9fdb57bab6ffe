package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// UpdateCartItemRequest sets a cart line's quantity. Removing a line has
// its own endpoint, so zero is rejected here.
type UpdateCartItemRequest struct {
	Quantity uint64 `json:"quantity" valid:"quantity"`
}

// ValidateUpdateCartItem binds and validates the quantity update form
func ValidateUpdateCartItem(c *gin.Context) (*UpdateCartItemRequest, error) {
	req := &UpdateCartItemRequest{}

	rules := govalidator.MapData{
		"quantity": []string{"required"},
	}
	messages := govalidator.MapData{
		"quantity": []string{
			"required:Quantity must be at least 1",
		},
	}

	if err := bindAndValidate(c, req, rules, messages); err != nil {
		return nil, err
	}
	return req, nil
}

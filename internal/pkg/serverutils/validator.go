package serverutils

import (
	"fmt"

	"chatbot-platform-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation on a parsed request body and
// converts the first failure into a BadRequest classification.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return apperror.New(apperror.ErrBadRequest,
				fmt.Sprintf("field '%s' failed validation on '%s'", first.Field(), first.Tag()))
		}
		return apperror.New(apperror.ErrBadRequest, "invalid request body")
	}
	return nil
}

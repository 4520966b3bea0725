package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apierrors "github.com/narender/product-console/common/apierrors"
)

// Singleton validator instance
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("positive_decimal", positiveDecimal)
	return v
}

// positiveDecimal accepts strings that parse as a decimal strictly greater than zero.
func positiveDecimal(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// ValidateRequest performs validation on the struct payload.
// Returns nil on success, or AppError with ErrCodeRequestValidation on failure.
func ValidateRequest(payload interface{}) *apierrors.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors []string
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		for _, vErr := range vErrs {
			validationErrors = append(validationErrors, fmt.Sprintf("Field '%s' failed validation on '%s' tag", vErr.Field(), vErr.Tag()))
		}
	} else {
		validationErrors = append(validationErrors, err.Error())
	}

	errMsg := "Validation failed: " + strings.Join(validationErrors, "; ")
	return apierrors.NewAppError(apierrors.ErrCodeRequestValidation, errMsg, err)
}

// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"swapmarket/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the marketplace enum tags: category, product_status, swap_resolution and role.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	mustRegister(v, "product_status", func(fl validator.FieldLevel) bool {
		return entity.ProductStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "swap_resolution", func(fl validator.FieldLevel) bool {
		return entity.SwapStatus(fl.Field().String()).IsResolution()
	})
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "register %s validation", tag))
	}
}

// Validate checks i against its struct tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors flattens validation failures into field -> failed rule.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}

	return fields
}

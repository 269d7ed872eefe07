package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate reads the same `binding` tags gin uses, so services enforce the
// request rules even when called without the HTTP layer.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	UseJSONFieldNames(v)
	return v
}()

// Validate checks a request struct and reports failures as apperrors.ErrValidation.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return ValidationError(err)
	}
	return nil
}

// ValidationError converts validator (or gin binding) failures into a single
// apperrors.ErrValidation with a readable message. Other errors are wrapped as-is.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// UseJSONFieldNames makes v report fields by their json names. Handlers apply it
// to gin's binding validator as well.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

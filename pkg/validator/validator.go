package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var (
	validate      = validator.New()
	mobilePattern = regexp.MustCompile(`^1\d{10}$`)
)

func init() {
	// Report fields by their JSON names, the names the console sends
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Mainland mobile number, 11 digits starting with 1
	validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*ErrorResponse{{FailedField: "", Tag: "invalid", Value: err.Error()}}
	}
	for _, fieldErr := range validationErrors {
		var element ErrorResponse
		element.FailedField = fieldPath(fieldErr.Namespace())
		element.Tag = fieldErr.Tag()
		element.Value = fieldErr.Param()
		errs = append(errs, &element)
	}
	return errs
}

// Message renders the first failure as a single human readable line
func Message(errs []*ErrorResponse) string {
	if len(errs) == 0 {
		return ""
	}
	first := errs[0]
	if first.Value != "" {
		return fmt.Sprintf("Validation failed: field '%s' failed on '%s=%s'", first.FailedField, first.Tag, first.Value)
	}
	return fmt.Sprintf("Validation failed: field '%s' failed on '%s'", first.FailedField, first.Tag)
}

// fieldPath drops the leading struct name, "SalesOrder.items[0].quantity" -> "items[0].quantity"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

package httpx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report violations under the wire field name, not the Go one.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct checks the declared constraints on s and returns a
// field-name -> message entry for every violated field, or nil when s
// is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		var message string
		switch fe.Tag() {
		case "required", "notblank":
			message = "must not be blank"
		case "min":
			message = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			message = fmt.Sprintf("must be at most %s characters", fe.Param())
		default:
			message = "is invalid"
		}
		fieldErrors[fe.Field()] = message
	}
	return fieldErrors
}

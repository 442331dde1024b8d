package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=8")      // password minimum length
		v.RegisterAlias("username", "min=3,max=30,alphanum")
		v.RegisterAlias("playlistname", "min=3,max=50")
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "alphanum":
		return "must contain alphanumeric characters only"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "min", "pwd", "username", "playlistname":
		if kind == reflect.String {
			return "must be at least " + param + " characters"
		}
		return "must be at least " + param
	case "max":
		if kind == reflect.String {
			return "must be at most " + param + " characters"
		}
		return "must be at most " + param
	case "len":
		return "must be exactly " + param + " characters"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be at least " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be at most " + param
	default:
		return "is invalid"
	}
}

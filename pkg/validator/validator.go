package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupOnce sync.Once

// Setup wires the shared tags into gin's validator and reports fields by their json name.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("league", func(fl validator.FieldLevel) bool {
			return models.League(fl.Field().String()).Valid()
		})
		// An empty string clears an optional field, so only non-empty values are checked.
		_ = v.RegisterValidation("optional_email", blankOr(v, "email"))
		_ = v.RegisterValidation("optional_url", blankOr(v, "url"))
	})
}

func blankOr(v *validator.Validate, tag string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || v.Var(s, tag) == nil
	}
}

// RegisterEnum adds a tag that accepts only values for which valid returns true.
func RegisterEnum(tag string, valid func(string) bool) {
	Setup()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	})
}

// ParseError flattens a binding error into field -> message.
func ParseError(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = message(fe)
		}
	} else if err != nil {
		out["error"] = err.Error()
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email", "optional_email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url", "optional_url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "league":
		return fmt.Sprintf("%s must be a known league category", fe.Field())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}

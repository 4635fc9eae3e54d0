package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Custom tags. "chatname" is an alias for the rules every chat handle follows.
const (
	TagPlatform   = "platform"
	TagCatalogKey = "catalogkey"
	TagChatName   = "chatname"

	chatNameRules = "required,max=64,excludesall=\x00\n\r\t"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var getValidator = sync.OnceValue(newValidator)

// GetValidator returns the shared validator
func GetValidator() *Validator {
	return getValidator()
}

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation(TagPlatform, validatePlatform)
	_ = v.RegisterValidation(TagCatalogKey, validateCatalogKey)
	v.RegisterAlias(TagChatName, chatNameRules)
	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field to a message for the caller
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, e := range fieldErrs {
		out[e.Field()] = fieldMessage(e)
	}
	return out
}

// fieldMessage keys on ActualTag so a failing "chatname" reports the rule inside the alias
func fieldMessage(e validator.FieldError) string {
	switch e.ActualTag() {
	case "required":
		return "This field is required"
	case TagPlatform:
		return "Invalid platform"
	case TagCatalogKey:
		return "Use letters, digits, '_' or '-'"
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "excludesall":
		return "Contains invalid characters"
	default:
		return "Invalid value"
	}
}

// validatePlatform accepts registered chat platforms; empty is left to "required"
func validatePlatform(fl validator.FieldLevel) bool {
	platform := fl.Field().String()
	return platform == "" || domain.ValidPlatforms[strings.ToLower(platform)]
}

// validateCatalogKey accepts machine and item keys such as "lucky_charm"
func validateCatalogKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if len(key) > 32 {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

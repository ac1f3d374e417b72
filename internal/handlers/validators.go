package handlers

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs binding validations used by the DTOs.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("brphone", validateBRPhone)
}

// validateBRPhone accepts raw sender IDs as well as plain numbers: the
// value must carry at least 10 digits once separators are stripped.
func validateBRPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if at := strings.IndexByte(value, '@'); at >= 0 {
		value = value[:at]
	}
	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}

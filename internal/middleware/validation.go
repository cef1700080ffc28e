package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kdattani/gradebook/internal/pkg/validation"
)

var moduleCodePattern = regexp.MustCompile(validation.ModuleCodePattern)

// RegisterValidators installs custom binding rules on gin's validator
// engine. Must run once before the router starts serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("modulecode", func(fl validator.FieldLevel) bool {
		return moduleCodePattern.MatchString(fl.Field().String())
	})
}

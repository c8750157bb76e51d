package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// skillTagPattern matches lowercase tags like "first-aid" or "cooking".
var skillTagPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// RegisterValidators installs custom validations on gin's binding engine.
// Call once at startup before routes are served.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("skilltag", func(fl validator.FieldLevel) bool {
		return skillTagPattern.MatchString(fl.Field().String())
	})
}

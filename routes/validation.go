package routes

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// E.164-ish: optional +, 7 to 15 digits. Synthetic guest phones never pass
// through request binding, so they are exempt.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}

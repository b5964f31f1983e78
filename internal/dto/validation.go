package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalStr validates that a field holds a parseable decimal number string.
// Amounts and rates travel as strings end to end so they are never coerced
// through binary floats.
func decimalStr(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registration only fails for empty tag names.
		_ = v.RegisterValidation("decimalstr", decimalStr)
	}
}

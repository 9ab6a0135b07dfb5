package utils

import (
	"medibook-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_date", validateSlotDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Slot dates are ISO-8601 date-only strings. Every endpoint touching slots
// requires this format so tuple matching stays exact.
func validateSlotDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constvars.SlotDateLayout, value)
	return err == nil
}

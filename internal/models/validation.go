package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern        = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	scheduleTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2} (AM|PM) - \d{1,2}:\d{2} (AM|PM)$`)
)

// RegisterValidations installs the custom tags used by the model structs.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("schedule_time", func(fl validator.FieldLevel) bool {
		return scheduleTimePattern.MatchString(fl.Field().String())
	})
}

// NewValidator returns a validator with the model tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

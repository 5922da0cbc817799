package validator

import (
	"fuel-sense/internal/domain/notification"
	"fuel-sense/internal/domain/user"
	"fuel-sense/internal/domain/vessel"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("user_role", validateUserRole)
	if err != nil {
		return
	}
	err = validate.RegisterValidation("fuel_grade", validateFuelGrade)
	if err != nil {
		return
	}
	err = validate.RegisterValidation("notification_type", validateNotificationType)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return user.Role(fl.Field().String()).Valid()
}

func validateFuelGrade(fl validator.FieldLevel) bool {
	return vessel.FuelGrade(fl.Field().String()).Valid()
}

func validateNotificationType(fl validator.FieldLevel) bool {
	return notification.Type(fl.Field().String()).Valid()
}

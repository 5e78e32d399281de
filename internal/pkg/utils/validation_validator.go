package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("yes_no", validateYesNo)
	validate.RegisterValidation("relation_type", validateRelationType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateYesNo(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "yes" || value == "no"
}

func validateRelationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "self" || value == "spouse" || value == "child" || value == "parent"
}

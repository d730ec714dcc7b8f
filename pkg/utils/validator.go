package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"Sistem-Absensi-QR/models"
)

var Validate *validator.Validate

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hhmm", validateHHMM)
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func ValidateStruct(s interface{}) []*models.ValidationDetail {
	var errors []*models.ValidationDetail
	err := Validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*models.ValidationDetail{{Tag: "invalid", Msg: err.Error()}}
		}

		for _, err := range validationErrors {
			var element models.ValidationDetail
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must match the layout %s.", element.Field, err.Param())
			case "hhmm":
				element.Msg = fmt.Sprintf("Field '%s' must be a time of day as HH:MM.", element.Field)
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}

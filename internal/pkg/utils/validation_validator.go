package utils

import (
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("visit_type", validateVisitType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateVisitType(fl validator.FieldLevel) bool {
	return slices.Contains(models.VisitTypes, fl.Field().String())
}

package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so errors match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	enums := map[string]func(string) bool{
		"category":   func(s string) bool { return ValidCategory(Category(s)) },
		"visibility": func(s string) bool { return ValidVisibility(Visibility(s)) },
		"role":       func(s string) bool { return ValidRole(Role(s)) },
		"daterange":  func(s string) bool { return ValidDateRange(DateRange(s)) },
		"sortkey":    func(s string) bool { return ValidSortKey(SortKey(s)) },
	}
	for tag, ok := range enums {
		ok := ok
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/avaluo/landval/internal/factors"
)

// RegisterValidators installs the categorical-key tags on gin's validator and
// makes validation errors report JSON field names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"parcel_position": func(fl validator.FieldLevel) bool {
			_, ok := factors.ParsePosition(fl.Field().String())
			return ok
		},
		"parcel_shape": func(fl validator.FieldLevel) bool {
			_, ok := factors.ParseShape(fl.Field().String())
			return ok
		},
		"elevation_direction": func(fl validator.FieldLevel) bool {
			_, ok := factors.ParseElevationDirection(fl.Field().String())
			return ok
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

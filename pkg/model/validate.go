package model

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func shapeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return wireName(f)
		})
	})
	return validate
}

// validateShape reports the required members of s that are unset, including
// those of nested shapes that are themselves set.
func validateShape(name string, s interface{}) error {
	if v := reflect.ValueOf(s); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	err := shapeValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &InvalidParamsError{Shape: name}
	for _, fe := range verrs {
		// Namespace is "GoTypeName.wire.path"; drop the type name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		out.Fields = append(out.Fields, path)
	}
	return out
}

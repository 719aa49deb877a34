package forms

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors - readable messages of a binding error on form, one per field,
// named after the form inputs
func Errors(form interface{}, err error) []string {

	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors

	if errors.As(err, &verrs) {

		out := make([]string, 0, len(verrs))

		for _, fe := range verrs {
			out = append(out, fmt.Sprintf("%s: %s", inputName(form, fe.StructField()), message(fe)))
		}

		return out
	}

	var perr *time.ParseError

	if errors.As(err, &perr) {
		return []string{fmt.Sprintf("invalid date %q", perr.Value)}
	}

	return []string{err.Error()}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min", "max":
		return "value out of range"
	case "numeric":
		return "enter a whole number"
	}
	return "invalid value"
}

func inputName(form interface{}, name string) string {

	t := reflect.TypeOf(form)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return name
	}

	if f, ok := t.FieldByName(name); ok {
		if tag := f.Tag.Get("form"); tag != "" {
			return tag
		}
	}

	return name
}

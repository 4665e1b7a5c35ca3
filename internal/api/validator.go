package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/service"
)

type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns an echo.Validator that reports fields by their json (or form) name.
func NewValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return &requestValidator{v: v}
}

func (r *requestValidator) Validate(i interface{}) error {
	return r.v.Struct(i)
}

// validationFields turns validator errors into messages keyed by field path,
// e.g. "leader.email" or "members[1].phone".
func validationFields(err error) map[string][]string {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string][]string, len(vErrs))
	for _, fe := range vErrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		fields[key] = append(fields[key], fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	isNumber := kind >= reflect.Int && kind <= reflect.Float64
	isList := kind == reflect.Slice || kind == reflect.Array

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		switch {
		case isNumber:
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
		case isList:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		default:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
	case "min":
		switch {
		case isNumber:
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
		case isList:
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		default:
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}

var dateType = reflect.TypeOf(model.Date{})

// typeErrorFields keys a JSON value of the wrong type by its field path.
// Syntax errors and other bind failures return nil.
func typeErrorFields(err error) map[string][]string {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) || ute.Type == nil {
		return nil
	}

	typ := ute.Type
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	got := jsonTypeName(ute.Value)

	if ute.Field == "" {
		return map[string][]string{
			service.NonFieldErrors: {fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", got)},
		}
	}

	return map[string][]string{ute.Field: {typeMessage(typ, got)}}
}

func typeMessage(typ reflect.Type, got string) string {
	if typ == dateType {
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Expected a list of items but got type \"%s\".", got)
	case reflect.Struct, reflect.Map:
		return fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", got)
	default:
		return "Invalid value."
	}
}

func jsonTypeName(value string) string {
	switch {
	case value == "string":
		return "str"
	case strings.HasPrefix(value, "number"):
		return "int"
	case value == "object":
		return "dict"
	case value == "array":
		return "list"
	default:
		return value
	}
}

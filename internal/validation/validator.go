package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is returned when tool arguments violate their declared schema
type Errors []ValidationError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Field + " " + ve.Message
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// Validator decodes tool arguments into typed structs and checks their
// `validate` tags. Safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report argument names as the caller sent them
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// Bind decodes args into target (a pointer to struct) and validates it.
// Type mismatches and tag violations are both reported as Errors.
func (v *Validator) Bind(args map[string]any, target any) error {
	if args == nil {
		args = map[string]any{}
	}

	data, err := json.Marshal(args)
	if err != nil {
		return Errors{{Field: "arguments", Message: "must be a JSON object"}}
	}

	if err := json.NewDecoder(bytes.NewReader(data)).Decode(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Errors{{
				Field:   typeErr.Field,
				Message: "must be " + describeKind(typeErr.Type),
				Value:   typeErr.Value,
			}}
		}
		return Errors{{Field: "arguments", Message: err.Error()}}
	}

	return v.Validate(target)
}

// Validate checks the validate tags of a decoded struct
func (v *Validator) Validate(target any) error {
	err := v.validate.Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve := ValidationError{Field: fieldPath(fe), Message: describeTag(fe)}
		if fe.Tag() != "required" {
			ve.Value = fe.Value()
		}
		out = append(out, ve)
	}
	return out
}

// fieldPath drops the struct name from the namespace: "categories[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "of a different type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Pointer:
		return describeKind(t.Elem())
	default:
		return "of type " + t.String()
	}
}

package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error variables for static error handling.
var (
	ErrInvalidIntegerValue  = errors.New("invalid integer value")
	ErrInvalidUintegerValue = errors.New("invalid unsigned integer value")
	ErrInvalidFloatValue    = errors.New("invalid float value")
	ErrInvalidBooleanValue  = errors.New("invalid boolean value")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

var (
	// Global validator instance to avoid per-request creation.
	globalValidator     *validator.Validate
	globalValidatorOnce sync.Once
)

// getGlobalValidator returns a singleton validator instance.
func getGlobalValidator() *validator.Validate {
	globalValidatorOnce.Do(func() {
		globalValidator = validator.New()
	})
	return globalValidator
}

// decoderFor returns the most suitable decoder for the request type, based on
// which struct tags it carries.
func decoderFor[T any](v *validator.Validate) RequestDecoder[T] {
	var probe T
	probeType := reflect.TypeOf(probe)

	if probeType == nil || probeType.Kind() != reflect.Struct {
		return NewCombinedDecoder[T](v)
	}

	hasPathTags := false
	hasJSONTags := false

	for i := 0; i < probeType.NumField(); i++ {
		field := probeType.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Tag.Get("path") != "" {
			hasPathTags = true
		}
		if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
			hasJSONTags = true
		}
	}

	switch {
	case hasPathTags && !hasJSONTags:
		return NewPathDecoder[T](v)
	case hasJSONTags && !hasPathTags:
		return NewJSONDecoder[T](v)
	default:
		return NewCombinedDecoder[T](v)
	}
}

// JSONDecoder implements RequestDecoder for JSON request bodies.
type JSONDecoder[T any] struct {
	validator *validator.Validate
}

// NewJSONDecoder creates a new JSON decoder with optional validation.
func NewJSONDecoder[T any](validator *validator.Validate) *JSONDecoder[T] {
	return &JSONDecoder[T]{validator: validator}
}

// Decode decodes a JSON request body into the target type.
func (d *JSONDecoder[T]) Decode(r *http.Request) (T, error) {
	var result T

	if err := decodeJSONBody(r, &result); err != nil {
		return result, err
	}

	if err := validateStruct(d.validator, result); err != nil {
		return result, err
	}

	return result, nil
}

// PathDecoder implements RequestDecoder for URL path parameters, mapping
// fields carrying a `path:"name"` tag via the router's pattern matching.
type PathDecoder[T any] struct {
	validator *validator.Validate
}

// NewPathDecoder creates a new path parameter decoder.
func NewPathDecoder[T any](validator *validator.Validate) *PathDecoder[T] {
	return &PathDecoder[T]{validator: validator}
}

// Decode decodes path parameters into the target type.
func (d *PathDecoder[T]) Decode(r *http.Request) (T, error) {
	var result T

	if err := decodePathParams(r, &result); err != nil {
		return result, err
	}

	if err := validateStruct(d.validator, result); err != nil {
		return result, err
	}

	return result, nil
}

// CombinedDecoder decodes path parameters and a JSON body into one request
// type, then validates the merged result in a single pass.
type CombinedDecoder[T any] struct {
	validator *validator.Validate
}

// NewCombinedDecoder creates a decoder that handles path and JSON body data.
func NewCombinedDecoder[T any](validator *validator.Validate) *CombinedDecoder[T] {
	return &CombinedDecoder[T]{validator: validator}
}

// Decode decodes request data from path parameters and the JSON body.
func (d *CombinedDecoder[T]) Decode(r *http.Request) (T, error) {
	var result T

	if err := decodePathParams(r, &result); err != nil {
		return result, err
	}

	// Path-tagged fields are excluded from JSON via `json:"-"`, so decoding
	// the body into the same struct cannot clobber them.
	if r.Body != nil && r.Body != http.NoBody {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" || strings.Contains(contentType, "application/json") {
			if err := decodeJSONBody(r, &result); err != nil {
				return result, err
			}
		}
	}

	if err := validateStruct(d.validator, result); err != nil {
		return result, err
	}

	return result, nil
}

// decodeJSONBody decodes the request body into target, converting JSON type
// mismatches into field-addressable validation errors. An empty body leaves
// the target zero-valued so required-field validation reports the gaps.
func decodeJSONBody(r *http.Request, target interface{}) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewValidationError("validation failed", map[string]string{
			field: fmt.Sprintf("must be of type %s", typeErr.Type.Kind()),
		})
	}

	// Syntax errors, truncated bodies, and anything else the decoder
	// rejects are the caller's fault, never a server failure.
	return NewValidationError("invalid JSON in request body", nil)
}

// decodePathParams maps `path:"name"` tagged fields from the matched route.
func decodePathParams(r *http.Request, target interface{}) error {
	targetValue := reflect.ValueOf(target).Elem()
	targetType := targetValue.Type()

	for i := 0; i < targetType.NumField(); i++ {
		field := targetType.Field(i)
		fieldValue := targetValue.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		pathName := field.Tag.Get("path")
		if pathName == "" {
			continue
		}

		pathValue := r.PathValue(pathName)
		if pathValue == "" {
			continue
		}

		if err := setFieldValue(fieldValue, pathValue); err != nil {
			return NewValidationError("validation failed", map[string]string{
				pathName: err.Error(),
			})
		}
	}

	return nil
}

// validateStruct runs the validator and converts its errors into a
// ValidationError keyed by lowercased field name.
func validateStruct(v *validator.Validate, value interface{}) error {
	if v == nil {
		return nil
	}

	err := v.Struct(value)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, validatorErr := range validatorErrs {
			field := strings.ToLower(validatorErr.Field())
			fields[field] = validatorErr.Tag()
		}
	}

	return NewValidationError("validation failed", fields)
}

// setFieldValue sets a reflect.Value from its string representation.
func setFieldValue(fieldValue reflect.Value, value string) error {
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidIntegerValue, value)
		}
		fieldValue.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUintegerValue, value)
		}
		fieldValue.SetUint(uintValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFloatValue, value)
		}
		fieldValue.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidBooleanValue, value)
		}
		fieldValue.SetBool(boolValue)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFieldType, fieldValue.Kind())
	}

	return nil
}

// JSONEncoder implements ResponseEncoder for JSON content.
type JSONEncoder[T any] struct{}

// NewJSONEncoder creates a new JSON encoder.
func NewJSONEncoder[T any]() *JSONEncoder[T] {
	return &JSONEncoder[T]{}
}

// Encode encodes the response data as JSON and writes it to the response writer.
func (e *JSONEncoder[T]) Encode(w http.ResponseWriter, data T, statusCode int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// ContentType returns the content type for JSON encoding.
func (e *JSONEncoder[T]) ContentType() string {
	return "application/json"
}

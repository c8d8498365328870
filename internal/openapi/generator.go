// Package openapi generates an OpenAPI 3.0 specification from the
// router's handler registrations.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/tasklight/todoapi/internal/config"
	"github.com/tasklight/todoapi/internal/httpapi"
)

// Generator generates OpenAPI specifications from a typed router.
type Generator struct {
	info config.OpenAPIConfig
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(info config.OpenAPIConfig) *Generator {
	return &Generator{info: info}
}

// Generate creates an OpenAPI specification from the router registrations.
func (g *Generator) Generate(router *httpapi.TypedRouter) (*openapi3.T, error) {
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.info.Title,
			Version:     g.info.Version,
			Description: g.info.Description,
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: map[string]*openapi3.SchemaRef{
				"Error": errorSchema().NewRef(),
			},
		},
	}

	handlers := router.Handlers()
	for i := range handlers {
		if err := g.processHandler(spec, &handlers[i]); err != nil {
			return nil, fmt.Errorf("failed to process handler %s %s: %w",
				handlers[i].Method, handlers[i].Path, err)
		}
	}

	return spec, nil
}

// GenerateJSON renders the specification as indented JSON.
func (g *Generator) GenerateJSON(spec *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spec to JSON: %w", err)
	}

	return data, nil
}

// GenerateYAML renders the specification as YAML.
func (g *Generator) GenerateYAML(spec *openapi3.T) ([]byte, error) {
	jsonData, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spec: %w", err)
	}

	var intermediate map[string]interface{}
	if err := json.Unmarshal(jsonData, &intermediate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spec: %w", err)
	}

	yamlData, err := yaml.Marshal(intermediate)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spec to YAML: %w", err)
	}

	return yamlData, nil
}

// processHandler adds one registration to the specification.
func (g *Generator) processHandler(spec *openapi3.T, reg *httpapi.HandlerRegistration) error {
	pathItem := spec.Paths.Find(reg.Path)
	if pathItem == nil {
		pathItem = &openapi3.PathItem{}
		spec.Paths.Set(reg.Path, pathItem)
	}

	operation := &openapi3.Operation{
		Summary:     reg.Metadata.Summary,
		Description: reg.Metadata.Description,
		Tags:        reg.Metadata.Tags,
		Responses:   &openapi3.Responses{},
	}

	operation.Parameters = extractPathParameters(reg.RequestType)

	if bodySchema := bodySchemaFor(reg.RequestType); bodySchema != nil {
		operation.RequestBody = &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content: map[string]*openapi3.MediaType{
					"application/json": {Schema: bodySchema.NewRef()},
				},
			},
		}
	}

	statusCode := "200"
	description := "Success"
	if reg.Method == http.MethodPost {
		statusCode = "201"
		description = "Created"
	}

	operation.Responses.Set(statusCode, &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: map[string]*openapi3.MediaType{
				"application/json": {Schema: schemaForType(reg.ResponseType).NewRef()},
			},
		},
	})

	if operation.RequestBody != nil {
		addErrorResponse(operation, "400", "Validation failed")
	}
	if len(operation.Parameters) > 0 {
		addErrorResponse(operation, "404", "Not found")
	}

	switch reg.Method {
	case http.MethodGet:
		pathItem.Get = operation
	case http.MethodPost:
		pathItem.Post = operation
	case http.MethodPut:
		pathItem.Put = operation
	case http.MethodDelete:
		pathItem.Delete = operation
	default:
		return fmt.Errorf("unsupported method %q", reg.Method)
	}

	return nil
}

// extractPathParameters builds parameter specs from `path:` tagged fields.
func extractPathParameters(requestType reflect.Type) openapi3.Parameters {
	var parameters openapi3.Parameters

	for i := 0; i < requestType.NumField(); i++ {
		field := requestType.Field(i)
		if !field.IsExported() {
			continue
		}

		pathName := field.Tag.Get("path")
		if pathName == "" {
			continue
		}

		parameters = append(parameters, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:     pathName,
				In:       "path",
				Required: true,
				Schema:   schemaForType(field.Type).NewRef(),
			},
		})
	}

	return parameters
}

// bodySchemaFor builds an object schema from `json:` tagged fields, or
// nil when the request carries no body.
func bodySchemaFor(requestType reflect.Type) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	hasBody := false

	for i := 0; i < requestType.NumField(); i++ {
		field := requestType.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonName := strings.Split(field.Tag.Get("json"), ",")[0]
		if jsonName == "" || jsonName == "-" {
			continue
		}

		hasBody = true
		schema.Properties[jsonName] = schemaForType(field.Type).NewRef()

		if strings.Contains(field.Tag.Get("validate"), "required") {
			schema.Required = append(schema.Required, jsonName)
		}
	}

	if !hasBody {
		return nil
	}

	return schema
}

// schemaForType maps a Go type onto an OpenAPI schema.
func schemaForType(t reflect.Type) *openapi3.Schema {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return openapi3.NewInt64Schema()
	case reflect.Float32, reflect.Float64:
		return openapi3.NewFloat64Schema()
	case reflect.Slice:
		schema := openapi3.NewArraySchema()
		schema.Items = schemaForType(t.Elem()).NewRef()
		return schema
	case reflect.Struct:
		schema := openapi3.NewObjectSchema()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			jsonName := strings.Split(field.Tag.Get("json"), ",")[0]
			if jsonName == "" || jsonName == "-" {
				continue
			}

			schema.Properties[jsonName] = schemaForType(field.Type).NewRef()
		}
		return schema
	default:
		return openapi3.NewSchema()
	}
}

// errorSchema describes the error envelope returned on failures.
func errorSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Properties["message"] = openapi3.NewStringSchema().NewRef()

	details := openapi3.NewObjectSchema()
	details.AdditionalProperties = openapi3.AdditionalProperties{
		Schema: openapi3.NewStringSchema().NewRef(),
	}
	schema.Properties["details"] = details.NewRef()
	schema.Required = []string{"message"}

	return schema
}

func addErrorResponse(operation *openapi3.Operation, statusCode, description string) {
	operation.Responses.Set(statusCode, &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: map[string]*openapi3.MediaType{
				"application/json": {
					Schema: &openapi3.SchemaRef{Ref: "#/components/schemas/Error"},
				},
			},
		},
	})
}

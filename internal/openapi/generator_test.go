package openapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklight/todoapi/internal/config"
	"github.com/tasklight/todoapi/internal/router"
	"github.com/tasklight/todoapi/internal/store"
)

func newTestGenerator() *Generator {
	return NewGenerator(config.OpenAPIConfig{
		Title:       "Todo API",
		Version:     "1.0.0",
		Description: "test spec",
	})
}

func TestGenerate_SpecInfo(t *testing.T) {
	spec, err := newTestGenerator().Generate(router.Setup(store.NewTodoStore()))

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Equal(t, "Todo API", spec.Info.Title)
	assert.Equal(t, "1.0.0", spec.Info.Version)
}

func TestGenerate_Paths(t *testing.T) {
	spec, err := newTestGenerator().Generate(router.Setup(store.NewTodoStore()))
	require.NoError(t, err)

	collection := spec.Paths.Find("/todos")
	require.NotNil(t, collection)
	assert.NotNil(t, collection.Get)
	assert.NotNil(t, collection.Post)

	item := spec.Paths.Find("/todos/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Put)
	assert.NotNil(t, item.Delete)
}

func TestGenerate_PathParameters(t *testing.T) {
	spec, err := newTestGenerator().Generate(router.Setup(store.NewTodoStore()))
	require.NoError(t, err)

	item := spec.Paths.Find("/todos/{id}")
	require.NotNil(t, item)
	require.Len(t, item.Get.Parameters, 1)

	param := item.Get.Parameters[0].Value
	assert.Equal(t, "id", param.Name)
	assert.Equal(t, "path", param.In)
	assert.True(t, param.Required)
}

func TestGenerate_CreateOperation(t *testing.T) {
	spec, err := newTestGenerator().Generate(router.Setup(store.NewTodoStore()))
	require.NoError(t, err)

	post := spec.Paths.Find("/todos").Post
	require.NotNil(t, post.RequestBody)

	body := post.RequestBody.Value
	assert.True(t, body.Required)

	schema := body.Content["application/json"].Schema.Value
	assert.Contains(t, schema.Properties, "title")
	assert.Contains(t, schema.Properties, "completed")
	assert.Contains(t, schema.Required, "title")
	assert.NotContains(t, schema.Required, "completed")

	created := post.Responses.Value("201")
	require.NotNil(t, created)

	badRequest := post.Responses.Value("400")
	require.NotNil(t, badRequest)
}

func TestGenerate_NotFoundResponses(t *testing.T) {
	spec, err := newTestGenerator().Generate(router.Setup(store.NewTodoStore()))
	require.NoError(t, err)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		item := spec.Paths.Find("/todos/{id}")
		var responses = item.Get.Responses
		switch method {
		case http.MethodPut:
			responses = item.Put.Responses
		case http.MethodDelete:
			responses = item.Delete.Responses
		}

		assert.NotNil(t, responses.Value("404"), "missing 404 for %s", method)
	}
}

func TestGenerateJSONAndYAML(t *testing.T) {
	generator := newTestGenerator()
	spec, err := generator.Generate(router.Setup(store.NewTodoStore()))
	require.NoError(t, err)

	jsonSpec, err := generator.GenerateJSON(spec)
	require.NoError(t, err)
	assert.Contains(t, string(jsonSpec), `"/todos"`)

	yamlSpec, err := generator.GenerateYAML(spec)
	require.NoError(t, err)
	assert.Contains(t, string(yamlSpec), "openapi:")
	assert.Contains(t, string(yamlSpec), "/todos/{id}:")
}

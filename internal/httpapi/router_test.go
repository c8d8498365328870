package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponse struct {
	Title string `json:"title"`
}

type echoHandler struct{}

func (h *echoHandler) Handle(ctx context.Context, req createRequest) (echoResponse, error) {
	return echoResponse{Title: req.Title}, nil
}

type failingHandler struct {
	err error
}

func (h *failingHandler) Handle(ctx context.Context, req getRequest) (echoResponse, error) {
	return echoResponse{}, h.err
}

func TestRouter_RecordsRegistrations(t *testing.T) {
	router := NewRouter()

	POST(router, "/todos", &echoHandler{},
		WithTags("todos"),
		WithSummary("Create todo"),
		WithDescription("Creates a todo"),
	)

	registrations := router.Handlers()
	require.Len(t, registrations, 1)
	assert.Equal(t, http.MethodPost, registrations[0].Method)
	assert.Equal(t, "/todos", registrations[0].Path)
	assert.Equal(t, "Create todo", registrations[0].Metadata.Summary)
	assert.Equal(t, []string{"todos"}, registrations[0].Metadata.Tags)
	assert.Equal(t, "createRequest", registrations[0].RequestType.Name())
	assert.Equal(t, "echoResponse", registrations[0].ResponseType.Name())
}

func TestRouter_PostEncodesCreated(t *testing.T) {
	router := NewRouter()
	POST(router, "/todos", &echoHandler{})

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"title":"Buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Buy milk", resp.Title)
}

func TestRouter_ValidationFailureReturnsBadRequest(t *testing.T) {
	router := NewRouter()
	POST(router, "/todos", &echoHandler{})

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp struct {
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Message)
	assert.Contains(t, resp.Details, "title")
}

func TestRouter_HandlerErrorIsMapped(t *testing.T) {
	router := NewRouter()
	GET(router, "/todos/{id}", &failingHandler{err: NewNotFoundError("todo", "5")})

	req := httptest.NewRequest(http.MethodGet, "/todos/5", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := NewRouter()
	GET(router, "/todos", &failingHandler{err: nil})

	req := httptest.NewRequest(http.MethodPatch, "/todos", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestRouter_HandlerMiddlewareRuns(t *testing.T) {
	router := NewRouter()

	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	POST(router, "/todos", &echoHandler{}, WithMiddleware(mw))

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}

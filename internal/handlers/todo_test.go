package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklight/todoapi/internal/httpapi"
	"github.com/tasklight/todoapi/internal/models"
	"github.com/tasklight/todoapi/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateTodoHandler_DefaultsCompletedToFalse(t *testing.T) {
	h := NewCreateTodoHandler(store.NewTodoStore())

	todo, err := h.Handle(context.Background(), models.CreateTodoRequest{Title: "Buy milk"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
}

func TestCreateTodoHandler_ExplicitCompleted(t *testing.T) {
	h := NewCreateTodoHandler(store.NewTodoStore())

	todo, err := h.Handle(context.Background(), models.CreateTodoRequest{
		Title:     "Buy milk",
		Completed: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestListTodosHandler_ReturnsCreationOrder(t *testing.T) {
	todoStore := store.NewTodoStore()
	todoStore.Create("first", false)
	todoStore.Create("second", true)

	h := NewListTodosHandler(todoStore)

	todos, err := h.Handle(context.Background(), models.ListTodosRequest{})

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Title)
	assert.Equal(t, "second", todos[1].Title)
}

func TestGetTodoHandler_NotFound(t *testing.T) {
	h := NewGetTodoHandler(store.NewTodoStore())

	_, err := h.Handle(context.Background(), models.GetTodoRequest{ID: 9999})

	var nfErr *httpapi.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "9999", nfErr.ID)
}

func TestUpdateTodoHandler_PreservesCompletedWhenAbsent(t *testing.T) {
	todoStore := store.NewTodoStore()
	created := todoStore.Create("buy milk", true)

	h := NewUpdateTodoHandler(todoStore)

	todo, err := h.Handle(context.Background(), models.UpdateTodoRequest{
		ID:    created.ID,
		Title: "buy bread",
	})

	require.NoError(t, err)
	assert.Equal(t, "buy bread", todo.Title)
	assert.True(t, todo.Completed)
}

func TestUpdateTodoHandler_OverwritesCompletedWhenPresent(t *testing.T) {
	todoStore := store.NewTodoStore()
	created := todoStore.Create("buy milk", true)

	h := NewUpdateTodoHandler(todoStore)

	todo, err := h.Handle(context.Background(), models.UpdateTodoRequest{
		ID:        created.ID,
		Title:     "buy milk",
		Completed: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, todo.Completed)
}

func TestDeleteTodoHandler(t *testing.T) {
	todoStore := store.NewTodoStore()
	created := todoStore.Create("buy milk", false)

	h := NewDeleteTodoHandler(todoStore)

	resp, err := h.Handle(context.Background(), models.DeleteTodoRequest{ID: created.ID})

	require.NoError(t, err)
	assert.Contains(t, resp.Message, "deleted")

	_, err = todoStore.Get(created.ID)
	var nfErr *httpapi.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestDeleteTodoHandler_NotFound(t *testing.T) {
	h := NewDeleteTodoHandler(store.NewTodoStore())

	_, err := h.Handle(context.Background(), models.DeleteTodoRequest{ID: 9999})

	var nfErr *httpapi.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

// Package handlers contains the typed business logic handlers for the
// todo API, one per operation.
package handlers

import (
	"context"
	"fmt"

	"github.com/tasklight/todoapi/internal/models"
	"github.com/tasklight/todoapi/internal/store"
)

// ListTodosHandler returns every todo in insertion order.
type ListTodosHandler struct {
	store *store.TodoStore
}

// NewListTodosHandler creates a new ListTodos handler.
func NewListTodosHandler(store *store.TodoStore) *ListTodosHandler {
	return &ListTodosHandler{store: store}
}

func (h *ListTodosHandler) Handle(ctx context.Context, req models.ListTodosRequest) ([]models.Todo, error) {
	return h.store.List(), nil
}

// GetTodoHandler looks up a single todo by id.
type GetTodoHandler struct {
	store *store.TodoStore
}

// NewGetTodoHandler creates a new GetTodo handler.
func NewGetTodoHandler(store *store.TodoStore) *GetTodoHandler {
	return &GetTodoHandler{store: store}
}

func (h *GetTodoHandler) Handle(ctx context.Context, req models.GetTodoRequest) (models.Todo, error) {
	return h.store.Get(req.ID)
}

// CreateTodoHandler creates a new todo. An omitted completed flag
// defaults to false.
type CreateTodoHandler struct {
	store *store.TodoStore
}

// NewCreateTodoHandler creates a new CreateTodo handler.
func NewCreateTodoHandler(store *store.TodoStore) *CreateTodoHandler {
	return &CreateTodoHandler{store: store}
}

func (h *CreateTodoHandler) Handle(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	return h.store.Create(req.Title, completed), nil
}

// UpdateTodoHandler replaces a todo's title and, when provided, its
// completed flag.
type UpdateTodoHandler struct {
	store *store.TodoStore
}

// NewUpdateTodoHandler creates a new UpdateTodo handler.
func NewUpdateTodoHandler(store *store.TodoStore) *UpdateTodoHandler {
	return &UpdateTodoHandler{store: store}
}

func (h *UpdateTodoHandler) Handle(ctx context.Context, req models.UpdateTodoRequest) (models.Todo, error) {
	return h.store.Update(req.ID, req.Title, req.Completed)
}

// DeleteTodoHandler removes a todo by id.
type DeleteTodoHandler struct {
	store *store.TodoStore
}

// NewDeleteTodoHandler creates a new DeleteTodo handler.
func NewDeleteTodoHandler(store *store.TodoStore) *DeleteTodoHandler {
	return &DeleteTodoHandler{store: store}
}

func (h *DeleteTodoHandler) Handle(ctx context.Context, req models.DeleteTodoRequest) (models.DeleteTodoResponse, error) {
	if err := h.store.Delete(req.ID); err != nil {
		return models.DeleteTodoResponse{}, err
	}

	return models.DeleteTodoResponse{
		Message: fmt.Sprintf("todo %d deleted", req.ID),
	}, nil
}

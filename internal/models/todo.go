// Package models defines the Todo entity and the typed request/response
// shapes exchanged over the HTTP API.
package models

// Todo represents a single task.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ListTodosRequest represents the request to list all todos.
type ListTodosRequest struct{}

// GetTodoRequest represents the request to get a todo by ID.
// Any well-formed integer id is accepted; ids that were never
// assigned surface as not-found from the store.
type GetTodoRequest struct {
	ID int64 `json:"-" path:"id"`
}

// CreateTodoRequest represents the request to create a new todo.
// Completed is a pointer so an omitted field defaults to false.
type CreateTodoRequest struct {
	Title     string `json:"title" validate:"required"`
	Completed *bool  `json:"completed"`
}

// UpdateTodoRequest represents the request to update an existing todo.
// An absent Completed preserves the stored value; an explicit false
// overwrites it.
type UpdateTodoRequest struct {
	ID        int64  `json:"-" path:"id"`
	Title     string `json:"title" validate:"required"`
	Completed *bool  `json:"completed"`
}

// DeleteTodoRequest represents the request to delete a todo by ID.
type DeleteTodoRequest struct {
	ID int64 `json:"-" path:"id"`
}

// DeleteTodoResponse acknowledges a successful deletion.
type DeleteTodoResponse struct {
	Message string `json:"message"`
}

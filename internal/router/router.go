// Package router wires the todo handlers onto the typed router.
package router

import (
	"github.com/tasklight/todoapi/internal/handlers"
	"github.com/tasklight/todoapi/internal/httpapi"
	"github.com/tasklight/todoapi/internal/store"
)

// Setup configures and returns a router with all todo routes registered.
func Setup(todoStore *store.TodoStore) *httpapi.TypedRouter {
	router := httpapi.NewRouter()

	httpapi.GET(router, "/todos", handlers.NewListTodosHandler(todoStore),
		httpapi.WithTags("todos"),
		httpapi.WithSummary("List todos"),
		httpapi.WithDescription("Returns all todos in creation order"),
	)

	httpapi.POST(router, "/todos", handlers.NewCreateTodoHandler(todoStore),
		httpapi.WithTags("todos"),
		httpapi.WithSummary("Create todo"),
		httpapi.WithDescription("Creates a new todo; completed defaults to false"),
	)

	httpapi.GET(router, "/todos/{id}", handlers.NewGetTodoHandler(todoStore),
		httpapi.WithTags("todos"),
		httpapi.WithSummary("Get todo by ID"),
		httpapi.WithDescription("Retrieves a specific todo by its identifier"),
	)

	httpapi.PUT(router, "/todos/{id}", handlers.NewUpdateTodoHandler(todoStore),
		httpapi.WithTags("todos"),
		httpapi.WithSummary("Update todo"),
		httpapi.WithDescription("Replaces the title and, when provided, the completed flag"),
	)

	httpapi.DELETE(router, "/todos/{id}", handlers.NewDeleteTodoHandler(todoStore),
		httpapi.WithTags("todos"),
		httpapi.WithSummary("Delete todo"),
		httpapi.WithDescription("Deletes a todo by its identifier"),
	)

	return router
}

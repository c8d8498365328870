// Package store holds the in-memory todo collection. All state is
// process-lifetime: initialized empty at startup and lost on shutdown.
package store

import (
	"strconv"
	"sync"

	"github.com/tasklight/todoapi/internal/httpapi"
	"github.com/tasklight/todoapi/internal/models"
)

// TodoStore is a thread-safe, insertion-ordered todo collection with a
// monotonically increasing id counter. Ids are never reused, even after
// deletion.
type TodoStore struct {
	mu     sync.RWMutex
	todos  []models.Todo
	nextID int64
}

// NewTodoStore creates an empty store. The first assigned id is 1.
func NewTodoStore() *TodoStore {
	return &TodoStore{
		todos:  make([]models.Todo, 0),
		nextID: 1,
	}
}

// List returns all todos in insertion order. The result is a copy, so
// callers never observe a mutation in progress.
func (s *TodoStore) List() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)

	return out
}

// Get returns the todo with the given id.
func (s *TodoStore) Get(id int64) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, todo := range s.todos {
		if todo.ID == id {
			return todo, nil
		}
	}

	return models.Todo{}, httpapi.NewNotFoundError("todo", strconv.FormatInt(id, 10))
}

// Create appends a new todo, assigning the next id.
func (s *TodoStore) Create(title string, completed bool) models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := models.Todo{
		ID:        s.nextID,
		Title:     title,
		Completed: completed,
	}
	s.nextID++
	s.todos = append(s.todos, todo)

	return todo
}

// Update replaces the title of the todo with the given id. Completed is
// replaced only when explicitly provided; nil preserves the stored value.
func (s *TodoStore) Update(id int64, title string, completed *bool) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}

		s.todos[i].Title = title
		if completed != nil {
			s.todos[i].Completed = *completed
		}

		return s.todos[i], nil
	}

	return models.Todo{}, httpapi.NewNotFoundError("todo", strconv.FormatInt(id, 10))
}

// Delete removes the todo with the given id. The id is never reassigned.
func (s *TodoStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)

			return nil
		}
	}

	return httpapi.NewNotFoundError("todo", strconv.FormatInt(id, 10))
}

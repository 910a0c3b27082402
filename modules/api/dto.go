package api

import (
	"time"

	domain "github.com/example/json-todo-demo/domain/todo"
)

// CreateTodoRequest is the HTTP request for creating a task. id and
// createdAt are system-assigned and never accepted here.
type CreateTodoRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"dueDate"`
	IsCompleted bool         `json:"isCompleted"`
}

// TodoResponse is the HTTP response for a single task.
type TodoResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"dueDate"`
	IsCompleted bool         `json:"isCompleted"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// ListTodosResponse is the HTTP response for listing tasks.
type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
	Total int            `json:"total"`
}

// ErrorResponse is the HTTP error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the HTTP health payload.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// InfoResponse is the HTTP root payload.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

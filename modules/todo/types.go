package todo

import (
	"context"
	"time"

	domain "github.com/example/json-todo-demo/domain/todo"
)

// CreateTodoRequest is the request for creating a task. System fields (id,
// createdAt) are never accepted from callers; they are minted by the service.
type CreateTodoRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	DueDate     *domain.Date `json:"dueDate,omitempty"`
	IsCompleted bool         `json:"isCompleted,omitempty"`
}

// TodoResponse is the full record shape returned by every operation.
type TodoResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"dueDate"`
	IsCompleted bool         `json:"isCompleted"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// GetTodoRequest is the request for fetching a single task.
type GetTodoRequest struct {
	TodoID string `json:"todo_id"`
}

// GetTodoResponse carries the record when found. Found travels explicitly so
// a simple miss survives the service-call boundary as data, not as an error
// string.
type GetTodoResponse struct {
	Found bool         `json:"found"`
	Todo  TodoResponse `json:"todo,omitempty"`
}

// UpdateTodoRequest is the request for a partial update. Only fields present
// in Patch are touched; id and createdAt never change.
type UpdateTodoRequest struct {
	TodoID string       `json:"todo_id"`
	Patch  domain.Patch `json:"patch"`
}

// UpdateTodoResponse carries the merged record, or Found=false on a miss.
type UpdateTodoResponse struct {
	Found bool         `json:"found"`
	Todo  TodoResponse `json:"todo,omitempty"`
}

// DeleteTodoRequest is the request for deleting a task.
type DeleteTodoRequest struct {
	TodoID string `json:"todo_id"`
}

// DeleteTodoResponse reports whether the task existed and was removed.
type DeleteTodoResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTodosRequest is the request for listing all tasks.
type ListTodosRequest struct{}

// ListTodosResponse is the response for listing tasks.
type ListTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

// TodoPort is the contract driving adapters use to reach the core domain.
// A miss is reported as domain.ErrNotFound, never as a nil response.
type TodoPort interface {
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*TodoResponse, error)
	GetTodo(ctx context.Context, todoID string) (*TodoResponse, error)
	ListTodos(ctx context.Context) (*ListTodosResponse, error)
	UpdateTodo(ctx context.Context, todoID string, patch domain.Patch) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, todoID string) error
	CompleteTodo(ctx context.Context, todoID string) (*TodoResponse, error)
	ReopenTodo(ctx context.Context, todoID string) (*TodoResponse, error)
}

// toTodoResponse converts a domain Task to a TodoResponse.
func toTodoResponse(t domain.Task) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
	}
}

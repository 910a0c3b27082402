package todo

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/json-todo-demo/domain/todo"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// todoAdapter wraps ServiceContainer for type-safe cross-module communication.
// It converts the explicit found/deleted flags in service responses back into
// domain.ErrNotFound, so callers keep the normal Go error taxonomy.
type todoAdapter struct {
	container mono.ServiceContainer
}

// NewTodoAdapter creates a new adapter for todo services.
// container is the ServiceContainer from the todo module received via
// SetDependencyServiceContainer.
func NewTodoAdapter(container mono.ServiceContainer) TodoPort {
	if container == nil {
		panic("todo adapter requires non-nil ServiceContainer")
	}
	return &todoAdapter{container: container}
}

// CreateTodo creates a new task via the create-todo service.
func (a *todoAdapter) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*TodoResponse, error) {
	var resp TodoResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-todo",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-todo service call failed: %w", err)
	}
	return &resp, nil
}

// GetTodo retrieves a task by ID via the get-todo service.
func (a *todoAdapter) GetTodo(ctx context.Context, todoID string) (*TodoResponse, error) {
	req := GetTodoRequest{TodoID: todoID}
	var resp GetTodoResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-todo",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-todo service call failed: %w", err)
	}
	if !resp.Found {
		return nil, domain.ErrNotFound
	}
	return &resp.Todo, nil
}

// ListTodos lists all tasks via the list-todos service.
func (a *todoAdapter) ListTodos(ctx context.Context) (*ListTodosResponse, error) {
	req := ListTodosRequest{}
	var resp ListTodosResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-todos",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-todos service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTodo applies a partial update via the update-todo service.
func (a *todoAdapter) UpdateTodo(ctx context.Context, todoID string, patch domain.Patch) (*TodoResponse, error) {
	req := UpdateTodoRequest{TodoID: todoID, Patch: patch}
	var resp UpdateTodoResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-todo",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("update-todo service call failed: %w", err)
	}
	if !resp.Found {
		return nil, domain.ErrNotFound
	}
	return &resp.Todo, nil
}

// DeleteTodo deletes a task via the delete-todo service.
func (a *todoAdapter) DeleteTodo(ctx context.Context, todoID string) error {
	req := DeleteTodoRequest{TodoID: todoID}
	var resp DeleteTodoResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-todo",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("delete-todo service call failed: %w", err)
	}
	if !resp.Deleted {
		return domain.ErrNotFound
	}
	return nil
}

// CompleteTodo marks a task as completed. There is no distinct persisted
// state for this: it is a one-field patch routed through the generic update.
func (a *todoAdapter) CompleteTodo(ctx context.Context, todoID string) (*TodoResponse, error) {
	return a.UpdateTodo(ctx, todoID, domain.Patch{IsCompleted: domain.Some(true)})
}

// ReopenTodo marks a task as not completed, as a one-field patch.
func (a *todoAdapter) ReopenTodo(ctx context.Context, todoID string) (*TodoResponse, error) {
	return a.UpdateTodo(ctx, todoID, domain.Patch{IsCompleted: domain.Some(false)})
}

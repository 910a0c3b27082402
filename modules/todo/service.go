package todo

import (
	"context"
	"errors"
	"log"
	"time"

	domain "github.com/example/json-todo-demo/domain/todo"
	"github.com/example/json-todo-demo/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createTodo handles the create-todo service request. This is the only place
// identity and creation timestamps are minted.
func (m *TodoModule) createTodo(_ context.Context, req CreateTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	title, err := domain.NormalizeTitle(req.Title)
	if err != nil {
		return TodoResponse{}, err
	}
	description := req.Description
	if description != nil {
		desc, err := domain.NormalizeDescription(*description)
		if err != nil {
			return TodoResponse{}, err
		}
		description = &desc
	}

	task := domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := m.repo.Save(task)
	if err != nil {
		return TodoResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TodoCreatedEvent{
			TodoID:    saved.ID,
			Title:     saved.Title,
			CreatedAt: saved.CreatedAt,
		}
		if err := events.TodoCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; the task is already persisted.
			log.Printf("[todo] Warning: failed to publish TodoCreated event for task %s: %v", saved.ID, err)
		}
	}

	return toTodoResponse(saved), nil
}

// getTodo handles the get-todo service request.
func (m *TodoModule) getTodo(_ context.Context, req GetTodoRequest, _ *mono.Msg) (GetTodoResponse, error) {
	task, err := m.repo.GetByID(req.TodoID)
	if errors.Is(err, domain.ErrNotFound) {
		return GetTodoResponse{Found: false}, nil
	}
	if err != nil {
		return GetTodoResponse{}, err
	}
	return GetTodoResponse{Found: true, Todo: toTodoResponse(task)}, nil
}

// updateTodo handles the update-todo service request. The merge policy lives
// here: only fields present in the patch change, and the merged record fully
// replaces the stored one.
func (m *TodoModule) updateTodo(_ context.Context, req UpdateTodoRequest, _ *mono.Msg) (UpdateTodoResponse, error) {
	if err := req.Patch.Validate(); err != nil {
		return UpdateTodoResponse{}, err
	}

	current, err := m.repo.GetByID(req.TodoID)
	if errors.Is(err, domain.ErrNotFound) {
		return UpdateTodoResponse{Found: false}, nil
	}
	if err != nil {
		return UpdateTodoResponse{}, err
	}

	merged := req.Patch.Apply(current)

	saved, err := m.repo.Save(merged)
	if err != nil {
		return UpdateTodoResponse{}, err
	}

	if m.eventBus != nil {
		now := time.Now().UTC()
		updated := events.TodoUpdatedEvent{
			TodoID:    saved.ID,
			Title:     saved.Title,
			UpdatedAt: now,
		}
		if err := events.TodoUpdatedV1.Publish(m.eventBus, updated, nil); err != nil {
			log.Printf("[todo] Warning: failed to publish TodoUpdated event for task %s: %v", saved.ID, err)
		}
		if !current.IsCompleted && saved.IsCompleted {
			completed := events.TodoCompletedEvent{
				TodoID:      saved.ID,
				Title:       saved.Title,
				CompletedAt: now,
			}
			if err := events.TodoCompletedV1.Publish(m.eventBus, completed, nil); err != nil {
				log.Printf("[todo] Warning: failed to publish TodoCompleted event for task %s: %v", saved.ID, err)
			}
		}
	}

	return UpdateTodoResponse{Found: true, Todo: toTodoResponse(saved)}, nil
}

// deleteTodo handles the delete-todo service request.
func (m *TodoModule) deleteTodo(_ context.Context, req DeleteTodoRequest, _ *mono.Msg) (DeleteTodoResponse, error) {
	deleted, err := m.repo.Delete(req.TodoID)
	if err != nil {
		return DeleteTodoResponse{}, err
	}
	if !deleted {
		return DeleteTodoResponse{Deleted: false}, nil
	}

	if m.eventBus != nil {
		event := events.TodoDeletedEvent{
			TodoID:    req.TodoID,
			DeletedAt: time.Now().UTC(),
		}
		if err := events.TodoDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[todo] Warning: failed to publish TodoDeleted event for task %s: %v", req.TodoID, err)
		}
	}

	return DeleteTodoResponse{Deleted: true}, nil
}

// listTodos handles the list-todos service request.
func (m *TodoModule) listTodos(_ context.Context, _ ListTodosRequest, _ *mono.Msg) (ListTodosResponse, error) {
	tasks, err := m.repo.GetAll()
	if err != nil {
		return ListTodosResponse{}, err
	}

	response := ListTodosResponse{
		Todos: make([]TodoResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Todos = append(response.Todos, toTodoResponse(task))
	}
	return response, nil
}

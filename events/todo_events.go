package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TodoCreatedEvent is emitted when a new task is created.
type TodoCreatedEvent struct {
	TodoID    string    `json:"todo_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TodoCreatedV1 is the typed event definition for task creation.
// Subject: events.todo.v1.todo-created
var TodoCreatedV1 = helper.EventDefinition[TodoCreatedEvent](
	"todo", "TodoCreated", "v1",
)

// TodoUpdatedEvent is emitted whenever a task is modified through a partial
// update, including the complete/incomplete convenience paths.
type TodoUpdatedEvent struct {
	TodoID    string    `json:"todo_id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoUpdatedV1 is the typed event definition for task updates.
// Subject: events.todo.v1.todo-updated
var TodoUpdatedV1 = helper.EventDefinition[TodoUpdatedEvent](
	"todo", "TodoUpdated", "v1",
)

// TodoCompletedEvent is emitted when an update flips a task to completed.
type TodoCompletedEvent struct {
	TodoID      string    `json:"todo_id"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}

// TodoCompletedV1 is the typed event definition for task completion.
// Subject: events.todo.v1.todo-completed
var TodoCompletedV1 = helper.EventDefinition[TodoCompletedEvent](
	"todo", "TodoCompleted", "v1",
)

// TodoDeletedEvent is emitted when a task is deleted.
type TodoDeletedEvent struct {
	TodoID    string    `json:"todo_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TodoDeletedV1 is the typed event definition for task deletion.
// Subject: events.todo.v1.todo-deleted
var TodoDeletedV1 = helper.EventDefinition[TodoDeletedEvent](
	"todo", "TodoDeleted", "v1",
)

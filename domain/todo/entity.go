package todo

import "time"

// Task is the core domain entity representing a to-do item.
// This is exactly the shape persisted in the collection file: field names
// match the stored JSON, and the stored key for each record equals ID.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *Date     `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

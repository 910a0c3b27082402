package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/json-todo-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	TodoID    string    `json:"todo_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule is a driven adapter that subscribes to todo domain
// events and keeps an in-memory log of what happened.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TodoCreatedV1, m.handleTodoCreated, m); err != nil {
		return fmt.Errorf("failed to register TodoCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TodoUpdatedV1, m.handleTodoUpdated, m); err != nil {
		return fmt.Errorf("failed to register TodoUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TodoCompletedV1, m.handleTodoCompleted, m); err != nil {
		return fmt.Errorf("failed to register TodoCompleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TodoDeletedV1, m.handleTodoDeleted, m); err != nil {
		return fmt.Errorf("failed to register TodoDeleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TodoCreated, TodoUpdated, TodoCompleted, TodoDeleted")
	return nil
}

func (m *NotificationModule) handleTodoCreated(_ context.Context, event events.TodoCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %s - %s", event.TodoID, event.Title)
	m.logNotification(event.TodoID, "todo_created", fmt.Sprintf("New task '%s' created", event.Title))
	return nil
}

func (m *NotificationModule) handleTodoUpdated(_ context.Context, event events.TodoUpdatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task updated: %s - %s", event.TodoID, event.Title)
	m.logNotification(event.TodoID, "todo_updated", fmt.Sprintf("Task '%s' updated", event.Title))
	return nil
}

func (m *NotificationModule) handleTodoCompleted(_ context.Context, event events.TodoCompletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task completed: %s - %s", event.TodoID, event.Title)
	m.logNotification(event.TodoID, "todo_completed", fmt.Sprintf("Task '%s' completed!", event.Title))
	return nil
}

func (m *NotificationModule) handleTodoDeleted(_ context.Context, event events.TodoDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task deleted: %s", event.TodoID)
	m.logNotification(event.TodoID, "todo_deleted", fmt.Sprintf("Task %s deleted", event.TodoID))
	return nil
}

func (m *NotificationModule) logNotification(todoID, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		TodoID:    todoID,
		Type:      notificationType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for todo events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}

package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/json-todo-demo/events"
	"github.com/example/json-todo-demo/storage"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TodoModule provides task management services (core domain). All persistence
// goes through the repository, which in turn goes through the single shared
// storage engine.
type TodoModule struct {
	repo     *Repository
	eventBus mono.EventBus
}

var _ mono.Module = (*TodoModule)(nil)
var _ mono.ServiceProviderModule = (*TodoModule)(nil)
var _ mono.EventEmitterModule = (*TodoModule)(nil)

// NewModule creates the todo module over the given storage engine. The
// engine is constructed once at process start and injected here, so its
// mutex is effective process-wide for the backing file.
func NewModule(engine *storage.Engine) *TodoModule {
	return &TodoModule{
		repo: NewRepository(engine),
	}
}

func (m *TodoModule) Name() string {
	return "todo"
}

func (m *TodoModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *TodoModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TodoCreatedV1.ToBase(),
		events.TodoUpdatedV1.ToBase(),
		events.TodoCompletedV1.ToBase(),
		events.TodoDeletedV1.ToBase(),
	}
}

func (m *TodoModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-todo", json.Unmarshal, json.Marshal, m.createTodo,
	); err != nil {
		return fmt.Errorf("failed to register create-todo service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-todo", json.Unmarshal, json.Marshal, m.getTodo,
	); err != nil {
		return fmt.Errorf("failed to register get-todo service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-todo", json.Unmarshal, json.Marshal, m.updateTodo,
	); err != nil {
		return fmt.Errorf("failed to register update-todo service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-todo", json.Unmarshal, json.Marshal, m.deleteTodo,
	); err != nil {
		return fmt.Errorf("failed to register delete-todo service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-todos", json.Unmarshal, json.Marshal, m.listTodos,
	); err != nil {
		return fmt.Errorf("failed to register list-todos service: %w", err)
	}

	log.Printf("[todo] Registered services: create-todo, get-todo, update-todo, delete-todo, list-todos")
	return nil
}

func (m *TodoModule) Start(_ context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repository not set")
	}
	if m.eventBus == nil {
		log.Println("[todo] Warning: eventBus not set, events will not be published")
	}
	log.Printf("[todo] Module started (collection file: %s)", m.repo.engine.Path())
	return nil
}

func (m *TodoModule) Stop(_ context.Context) error {
	log.Println("[todo] Module stopped")
	return nil
}

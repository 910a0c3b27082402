package todo

import (
	"encoding/json"
	"fmt"

	domain "github.com/example/json-todo-demo/domain/todo"
	"github.com/example/json-todo-demo/storage"
)

// Repository translates between the storage engine's raw collection and
// typed tasks. It is a pure data-access layer: identity, timestamps and
// merge policy live in the service handlers, not here.
type Repository struct {
	engine *storage.Engine
}

// NewRepository creates a repository over a shared storage engine. The
// engine must be the single instance owning the backing file so its mutex
// covers every caller.
func NewRepository(engine *storage.Engine) *Repository {
	return &Repository{engine: engine}
}

// GetAll reads the full collection and decodes every record. A record that
// fails to decode surfaces as *domain.DecodeError.
func (r *Repository) GetAll() ([]domain.Task, error) {
	data, err := r.engine.Read()
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(data))
	for id, raw := range data {
		task, err := decodeTask(id, raw)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID fetches a single task. A miss is domain.ErrNotFound; an entry that
// exists but cannot be decoded is *domain.DecodeError.
func (r *Repository) GetByID(todoID string) (domain.Task, error) {
	data, err := r.engine.Read()
	if err != nil {
		return domain.Task{}, err
	}

	raw, found := data[todoID]
	if !found {
		return domain.Task{}, domain.ErrNotFound
	}
	return decodeTask(todoID, raw)
}

// Save persists a full record keyed by its id, for both creation and
// updates. An existing entry under the same id is fully overwritten. The
// read-modify-write cycle runs under the engine's gate, so concurrent saves
// never lose each other's entries.
func (r *Repository) Save(task domain.Task) (domain.Task, error) {
	raw, err := json.Marshal(task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("encode task %s: %w", task.ID, err)
	}

	err = r.engine.Mutate(func(data storage.Collection) (storage.Collection, error) {
		data[task.ID] = raw
		return data, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete removes a task by id. Returns false without writing when the id is
// absent.
func (r *Repository) Delete(todoID string) (bool, error) {
	deleted := false
	err := r.engine.Mutate(func(data storage.Collection) (storage.Collection, error) {
		if _, found := data[todoID]; !found {
			return nil, storage.ErrNoChange
		}
		delete(data, todoID)
		deleted = true
		return data, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func decodeTask(id string, raw json.RawMessage) (domain.Task, error) {
	var task domain.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return domain.Task{}, &domain.DecodeError{ID: id, Err: err}
	}
	if task.ID == "" || task.Title == "" {
		return domain.Task{}, &domain.DecodeError{
			ID:  id,
			Err: fmt.Errorf("missing required field"),
		}
	}
	return task, nil
}

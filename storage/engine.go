// Package storage owns the on-disk JSON collection file. One Engine instance
// per backing file serializes every read and write through a single mutex, so
// no caller ever observes a half-written collection and no two writers race.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is the persisted document: a mapping from task id to the raw
// JSON record stored under it. Values stay raw here; decoding into domain
// types is the repository's job.
type Collection map[string]json.RawMessage

// ErrCorrupted is returned on read when the backing file cannot be parsed
// and the engine is configured with FailOnCorruption.
var ErrCorrupted = errors.New("storage: backing file is corrupted")

// ErrNoChange can be returned from a Mutate callback to abort the cycle
// without writing. Mutate swallows it and returns nil.
var ErrNoChange = errors.New("storage: no change")

// CorruptionPolicy controls how a Read treats an unparseable backing file.
type CorruptionPolicy int

const (
	// ResetOnCorruption treats unparseable content as an empty collection:
	// the corrupt content is ignored and will be overwritten by the next
	// mutation. Silent data loss is the tradeoff, which is why
	// FailOnCorruption exists.
	ResetOnCorruption CorruptionPolicy = iota

	// FailOnCorruption surfaces unparseable content as ErrCorrupted.
	FailOnCorruption
)

// Engine provides atomic, mutually-exclusive whole-file access to a single
// JSON collection file. Construct one per backing file at process start and
// share it across every repository targeting that file.
type Engine struct {
	path   string
	policy CorruptionPolicy
	mu     sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithCorruptionPolicy sets how reads treat an unparseable backing file.
func WithCorruptionPolicy(policy CorruptionPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// NewEngine creates an engine for the given file path. The file is not
// touched until the first Read or Write.
func NewEngine(path string, opts ...Option) *Engine {
	e := &Engine{
		path:   path,
		policy: ResetOnCorruption,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the backing file path.
func (e *Engine) Path() string {
	return e.path
}

// Read returns the full current collection. If the backing file does not
// exist yet, it is created holding an empty collection.
func (e *Engine) Read() (Collection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load()
}

// Write serializes the full collection and replaces the file contents.
// Missing parent directories are created. The new content is written to a
// temporary file in the same directory and renamed into place, so the file
// always holds either the old or the new complete document.
func (e *Engine) Write(data Collection) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.save(data)
}

// Mutate runs a full read-modify-write cycle while holding the gate, so two
// concurrent mutations can never interleave between the read and the write
// and lose an entry. apply receives the current collection and returns the
// collection to persist; returning ErrNoChange skips the write.
func (e *Engine) Mutate(apply func(Collection) (Collection, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.load()
	if err != nil {
		return err
	}
	next, err := apply(data)
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	if err != nil {
		return err
	}
	return e.save(next)
}

func (e *Engine) load() (Collection, error) {
	if err := e.ensureDir(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(e.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := e.save(Collection{}); err != nil {
			return nil, err
		}
		return Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", e.path, err)
	}

	var data Collection
	if err := json.Unmarshal(raw, &data); err != nil {
		if e.policy == FailOnCorruption {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, e.path, err)
		}
		return Collection{}, nil
	}
	if data == nil {
		// The file held JSON null; an empty mapping is the bootstrap state.
		data = Collection{}
	}
	return data, nil
}

func (e *Engine) save(data Collection) error {
	if err := e.ensureDir(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode collection: %w", err)
	}

	tmp := e.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, e.path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", e.path, err)
	}
	return nil
}

func (e *Engine) ensureDir() error {
	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create directory %s: %w", dir, err)
	}
	return nil
}

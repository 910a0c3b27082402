package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/json-todo-demo/modules/api"
	"github.com/example/json-todo-demo/modules/notification"
	"github.com/example/json-todo-demo/modules/todo"
	"github.com/example/json-todo-demo/storage"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("Starting json-todo-demo application...")

	// One engine instance per backing file for the lifetime of the process.
	// Every repository goes through this instance, so its lock serializes
	// all file access.
	dbPath := os.Getenv("TODO_DB_PATH")
	if dbPath == "" {
		dbPath = "data/todos.json"
	}
	var opts []storage.Option
	if os.Getenv("TODO_ON_CORRUPT") == "fail" {
		opts = append(opts, storage.WithCorruptionPolicy(storage.FailOnCorruption))
	}
	engine := storage.NewEngine(dbPath, opts...)

	// Create mono application with embedded NATS
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(notification.NewModule()) // Event consumer (subscribes to todo events)
	app.Register(todo.NewModule(engine))   // Core domain (persistence + business logic)
	app.Register(api.NewModule())          // Driving adapter (depends on todo)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(dbPath)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(dbPath string) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("Tasks are persisted in: %s", dbPath)
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /todos/                - Create a task")
	log.Println("  GET    /todos/                - List all tasks")
	log.Println("  GET    /todos/:id             - Get a task by ID")
	log.Println("  PATCH  /todos/:id             - Partially update a task")
	log.Println("  DELETE /todos/:id             - Delete a task")
	log.Println("  POST   /todos/:id/complete    - Mark a task complete")
	log.Println("  POST   /todos/:id/incomplete  - Mark a task incomplete")
	log.Println("  GET    /health                - Health check")
	log.Println("")
	log.Println("Example: see demo.sh for curl commands to interact with the API")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

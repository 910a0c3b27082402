package api

import (
	"errors"

	domain "github.com/example/json-todo-demo/domain/todo"
	"github.com/example/json-todo-demo/modules/todo"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes, mirroring the /todos resource:
// collection-level create/list, id-level get/patch/delete, and the
// complete/incomplete convenience endpoints.
func (m *APIModule) setupRoutes() {
	m.app.Get("/", m.rootHandler)
	m.app.Get("/health", m.healthHandler)

	todos := m.app.Group("/todos")
	todos.Post("/", m.createTodo)
	todos.Get("/", m.listTodos)
	todos.Get("/:id", m.getTodo)
	todos.Patch("/:id", m.updateTodo)
	todos.Delete("/:id", m.deleteTodo)
	todos.Post("/:id/complete", m.completeTodo)
	todos.Post("/:id/incomplete", m.incompleteTodo)
}

// rootHandler handles GET /.
func (m *APIModule) rootHandler(c *fiber.Ctx) error {
	return c.JSON(InfoResponse{
		Message: "Welcome to the To-Do API",
		Version: "1.0.0",
	})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// createTodo handles POST /todos/.
func (m *APIModule) createTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}

	title, err := domain.NormalizeTitle(req.Title)
	if err != nil {
		return badRequest(c, "validation_error", err.Error())
	}
	description := req.Description
	if description != nil {
		desc, err := domain.NormalizeDescription(*description)
		if err != nil {
			return badRequest(c, "validation_error", err.Error())
		}
		description = &desc
	}

	resp, err := m.todoAdapter.CreateTodo(c.Context(), &todo.CreateTodoRequest{
		Title:       title,
		Description: description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return internalError(c, "create_failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toHTTPResponse(resp))
}

// listTodos handles GET /todos/.
func (m *APIModule) listTodos(c *fiber.Ctx) error {
	resp, err := m.todoAdapter.ListTodos(c.Context())
	if err != nil {
		return internalError(c, "list_failed", err)
	}

	items := make([]TodoResponse, 0, len(resp.Todos))
	for _, t := range resp.Todos {
		items = append(items, toHTTPResponse(&t))
	}

	return c.JSON(ListTodosResponse{
		Items: items,
		Total: resp.Total,
	})
}

// getTodo handles GET /todos/:id.
func (m *APIModule) getTodo(c *fiber.Ctx) error {
	todoID := c.Params("id")

	resp, err := m.todoAdapter.GetTodo(c.Context(), todoID)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, "get_failed", err)
	}

	return c.JSON(toHTTPResponse(resp))
}

// updateTodo handles PATCH /todos/:id. The body is a partial update: a key
// absent from the payload leaves that field unchanged, while an explicit
// null clears the nullable fields.
func (m *APIModule) updateTodo(c *fiber.Ctx) error {
	todoID := c.Params("id")

	var patch domain.Patch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, "validation_error", err.Error())
	}

	resp, err := m.todoAdapter.UpdateTodo(c.Context(), todoID, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, "update_failed", err)
	}

	return c.JSON(toHTTPResponse(resp))
}

// deleteTodo handles DELETE /todos/:id.
func (m *APIModule) deleteTodo(c *fiber.Ctx) error {
	todoID := c.Params("id")

	err := m.todoAdapter.DeleteTodo(c.Context(), todoID)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, "delete_failed", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// completeTodo handles POST /todos/:id/complete.
func (m *APIModule) completeTodo(c *fiber.Ctx) error {
	todoID := c.Params("id")

	resp, err := m.todoAdapter.CompleteTodo(c.Context(), todoID)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, "complete_failed", err)
	}

	return c.JSON(toHTTPResponse(resp))
}

// incompleteTodo handles POST /todos/:id/incomplete.
func (m *APIModule) incompleteTodo(c *fiber.Ctx) error {
	todoID := c.Params("id")

	resp, err := m.todoAdapter.ReopenTodo(c.Context(), todoID)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, "incomplete_failed", err)
	}

	return c.JSON(toHTTPResponse(resp))
}

func toHTTPResponse(t *todo.TodoResponse) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
	}
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: "Task not found",
	})
}

func internalError(c *fiber.Ctx, code string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

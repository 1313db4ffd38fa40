package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/biosecret/go-todo/handlers"
)

// SetupRoutes gắn toàn bộ route của ứng dụng vào app
func SetupRoutes(app *fiber.App, todos *handlers.TodoHandler) {
	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api/v1")
	api.Get("/todos", todos.HandleListTodos)
	api.Post("/todos", todos.HandleCreateTodo)
	api.Get("/todos/:id", todos.HandleGetOneTodo)
	api.Put("/todos/:id", todos.HandleUpdateTodo)
	api.Delete("/todos/:id", todos.HandleDeleteTodo)

	feed := app.Group("/feed")
	feed.Get("/posts", handlers.HandleListPosts)
	feed.Post("/post", handlers.HandleCreatePost)
}

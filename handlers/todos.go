package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/models"
	"github.com/biosecret/go-todo/utils"
	"github.com/biosecret/go-todo/validation"
)

// defaultCardColor được gán khi payload không chỉ định màu
const defaultCardColor = "#cddc39"

// TodoStore là giao diện lưu trữ mà các handler todo sử dụng
type TodoStore interface {
	Scan(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Put(ctx context.Context, todo *models.Todo) error
	UpdateCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

// TodoHandler chứa các handler CRUD cho todos
type TodoHandler struct {
	store TodoStore
}

// NewTodoHandler tạo TodoHandler với store được truyền vào
func NewTodoHandler(store TodoStore) *TodoHandler {
	return &TodoHandler{store: store}
}

// HandleListTodos godoc
// @Summary Lấy tất cả todos
// @Tags todos
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/v1/todos [get]
func (h *TodoHandler) HandleListTodos(c *fiber.Ctx) error {
	todos, err := h.store.Scan(c.Context())
	if err != nil {
		return utils.SendResponse(c, fiber.StatusInternalServerError, "Error", "Error in DB Operation!", err.Error())
	}

	return utils.SendResponse(c, fiber.StatusOK, "Success", "List all to-do items", todos)
}

// HandleGetOneTodo godoc
// @Summary Lấy một todo theo ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/v1/todos/{id} [get]
func (h *TodoHandler) HandleGetOneTodo(c *fiber.Ctx) error {
	id := c.Params("id")

	todo, err := h.store.Get(c.Context(), id)
	if errors.Is(err, database.ErrTodoNotFound) {
		return utils.SendResponse(c, fiber.StatusNotFound, "Error", "No Todo found with ID: "+id, nil)
	}
	if err != nil {
		return utils.SendResponse(c, fiber.StatusInternalServerError, "Error", "Error in DB Operation!", err.Error())
	}

	return utils.SendResponse(c, fiber.StatusOK, "Success", "Get to-do item by ID: "+id, todo)
}

// HandleCreateTodo godoc
// @Summary Tạo mới một todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body models.CreateTodoInput true "Todo"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/v1/todos [post]
func (h *TodoHandler) HandleCreateTodo(c *fiber.Ctx) error {
	input := new(models.CreateTodoInput)
	if err := c.BodyParser(input); err != nil {
		return utils.SendResponse(c, fiber.StatusBadRequest, "Error", "Validation error", err.Error())
	}
	if details := validation.Validate(input); details != nil {
		return utils.SendResponse(c, fiber.StatusBadRequest, "Error", "Validation error", details)
	}

	cardColor := input.CardColor
	if cardColor == "" {
		cardColor = defaultCardColor
	}

	// isCompleted trong payload bị bỏ qua, một todo mới luôn bắt đầu chưa hoàn thành
	nTodo := &models.Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CardColor:   cardColor,
		IsCompleted: false,
		Timestamps: models.Timestamps{
			CreatedOn: time.Now().UTC(),
		},
	}

	if err := h.store.Put(c.Context(), nTodo); err != nil {
		return utils.SendResponse(c, fiber.StatusInternalServerError, "Error", "Error in DB Operation!", err.Error())
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Success", "Todo has been created successfully!", nTodo)
}

// HandleUpdateTodo godoc
// @Summary Cập nhật trạng thái hoàn thành của một todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body models.UpdateTodoInput true "Todo"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/v1/todos/{id} [put]
func (h *TodoHandler) HandleUpdateTodo(c *fiber.Ctx) error {
	id := c.Params("id")

	input := new(models.UpdateTodoInput)
	if err := c.BodyParser(input); err != nil {
		return utils.SendResponse(c, fiber.StatusBadRequest, "Error", "Validation error", err.Error())
	}
	if details := validation.Validate(input); details != nil {
		return utils.SendResponse(c, fiber.StatusBadRequest, "Error", "Validation error", details)
	}

	// Kiểm tra tồn tại và cập nhật trong cùng một thao tác với store
	todo, err := h.store.UpdateCompleted(c.Context(), id, *input.IsCompleted)
	if errors.Is(err, database.ErrTodoNotFound) {
		return utils.SendResponse(c, fiber.StatusNotFound, "Error", "No Todo found with ID: "+id, nil)
	}
	if err != nil {
		return utils.SendResponse(c, fiber.StatusInternalServerError, "Error", "Error in DB Operation!", err.Error())
	}

	return utils.SendResponse(c, fiber.StatusOK, "Success", "Todo ID: "+id+" has been updated successfully!", todo)
}

// HandleDeleteTodo godoc
// @Summary Xóa một todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/v1/todos/{id} [delete]
func (h *TodoHandler) HandleDeleteTodo(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.Delete(c.Context(), id)
	if errors.Is(err, database.ErrTodoNotFound) {
		return utils.SendResponse(c, fiber.StatusNotFound, "Error", "No Todo found with ID: "+id, nil)
	}
	if err != nil {
		return utils.SendResponse(c, fiber.StatusInternalServerError, "Error", "Error in DB Operation!", err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

package utils

import "github.com/gofiber/fiber/v2"

// Response là khung JSON thống nhất cho mọi phản hồi của API
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SendResponse ghi phản hồi JSON theo khung {status, message, data?}.
// data bị bỏ hẳn khỏi body nếu nil.
func SendResponse(c *fiber.Ctx, code int, status string, message string, data any) error {
	return c.Status(code).JSON(Response{Status: status, Message: message, Data: data})
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/biosecret/go-todo/models"
	"github.com/biosecret/go-todo/utils"
)

// examplePost là bài viết mẫu cố định, feed chưa có lưu trữ thật
var examplePost = models.Post{
	Title:   "Hello",
	Content: "Lorem dsjafkjfl lkfjdslkf lsdkfjqpwoiq dfpiqopweidlkfsds",
}

// HandleListPosts luôn trả về đúng một bài viết mẫu
func HandleListPosts(c *fiber.Ctx) error {
	return utils.SendResponse(c, fiber.StatusOK, "Success", "List all posts", []models.Post{examplePost})
}

// HandleCreatePost dựng bài viết từ payload và trả về ngay, không lưu trữ.
// Gọi list sau đó sẽ không thấy bài viết này.
func HandleCreatePost(c *fiber.Ctx) error {
	post := new(models.Post)
	if err := c.BodyParser(post); err != nil {
		return utils.SendResponse(c, fiber.StatusBadRequest, "Error", "Validation error", err.Error())
	}

	post.ID = time.Now().UTC().Format(time.RFC3339)

	return utils.SendResponse(c, fiber.StatusCreated, "Success", "Post created successfully", post)
}

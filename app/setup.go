package app

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/biosecret/go-todo/config"
	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/handlers"
	"github.com/biosecret/go-todo/router"
	"github.com/biosecret/go-todo/utils"
)

// NewApp dựng ứng dụng Fiber với toàn bộ middleware và route
func NewApp(todos *handlers.TodoHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		// Lỗi thoát khỏi handler được ghi log và trả về theo khung chung,
		// dùng status code của lỗi nếu có, mặc định là 500
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			log.Printf("unhandled error: %v", err)
			return utils.SendResponse(c, code, "Error", err.Error(), nil)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, todos)

	// Đính kèm Swagger
	config.AddSwaggerRoutes(app)

	// Route không khớp rơi xuống đây
	app.Use(func(c *fiber.Ctx) error {
		return utils.SendResponse(c, fiber.StatusNotFound, "Error", "Route not found", nil)
	})

	return app
}

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Khởi động PostgreSQL
	db, err := database.StartPostgreSQL()
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer database.ClosePostgreSQL(db)

	app := NewApp(handlers.NewTodoHandler(database.NewTodoStore(db)))

	// Lấy port từ biến môi trường và bắt đầu lắng nghe kết nối
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000" // Giá trị mặc định nếu PORT không được thiết lập
	}

	return app.Listen(":" + port)
}

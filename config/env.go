package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env nếu có
func LoadENV() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		// Không có file .env, dùng biến môi trường của hệ thống
		return nil
	}
	return godotenv.Load()
}

package main

import (
	"github.com/biosecret/go-todo/app"
	_ "github.com/biosecret/go-todo/docs"
)

// @title Todo API
// @version 1.0
// @description REST API quản lý to-do items và feed posts
// @BasePath /
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}

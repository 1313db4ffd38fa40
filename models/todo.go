package models

import "time"

// Timestamps lưu các mốc thời gian của một todo.
// modifiedOn và completedOn hiện chưa được gán bởi bất kỳ thao tác nào.
type Timestamps struct {
	CreatedOn   time.Time  `json:"createdOn"`
	ModifiedOn  *time.Time `json:"modifiedOn"`
	CompletedOn *time.Time `json:"completedOn"`
}

// Todo là cấu trúc dữ liệu của một todo
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CardColor   string     `json:"cardColor"`
	IsCompleted bool       `json:"isCompleted"`
	Timestamps  Timestamps `json:"timestamps"`
}

// CreateTodoInput là payload tạo mới một todo
type CreateTodoInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=1024"`
	CardColor   string `json:"cardColor" validate:"omitempty,max=7"`
	IsCompleted *bool  `json:"isCompleted"`
}

// UpdateTodoInput là payload cập nhật todo, chỉ chấp nhận isCompleted
type UpdateTodoInput struct {
	IsCompleted *bool `json:"isCompleted" validate:"required"`
}

// Post là cấu trúc dữ liệu của một bài viết trên feed (không được lưu trữ)
type Post struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver cho database/sql

	"github.com/biosecret/go-todo/models"
)

// ErrTodoNotFound được trả về khi không tồn tại todo nào với ID yêu cầu
var ErrTodoNotFound = errors.New("todo not found")

// StartPostgreSQL khởi tạo kết nối với PostgreSQL và tạo bảng nếu chưa tồn tại
func StartPostgreSQL() (*sql.DB, error) {
	uri := os.Getenv("POSTGRESQL_URI")
	if uri == "" {
		return nil, errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}

	db, err := sql.Open("pgx", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	fmt.Println("Connected to PostgreSQL successfully")

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables tạo bảng todos nếu chưa tồn tại
func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS todos (
		id VARCHAR(50) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description VARCHAR(1024) NOT NULL,
		card_color VARCHAR(7) NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_on TIMESTAMPTZ NOT NULL,
		modified_on TIMESTAMPTZ,
		completed_on TIMESTAMPTZ
	)
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	fmt.Println("Tables created or already exist")
	return nil
}

// ClosePostgreSQL đóng kết nối với PostgreSQL
func ClosePostgreSQL(db *sql.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			panic(err)
		}
		fmt.Println("Database connection closed")
	}
}

// TodoStore thao tác trên bảng todos, mỗi bản ghi được định danh bởi id
type TodoStore struct {
	db *sql.DB
}

// NewTodoStore tạo một TodoStore trên kết nối đã có
func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

const todoColumns = "id, title, description, card_color, is_completed, created_on, modified_on, completed_on"

func scanTodo(row interface{ Scan(...any) error }) (*models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID, &todo.Title, &todo.Description, &todo.CardColor, &todo.IsCompleted,
		&todo.Timestamps.CreatedOn, &todo.Timestamps.ModifiedOn, &todo.Timestamps.CompletedOn,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Scan trả về toàn bộ todos trong bảng
func (s *TodoStore) Scan(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+todoColumns+" FROM todos ORDER BY created_on DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}

	return todos, rows.Err()
}

// Get trả về một todo theo ID, ErrTodoNotFound nếu không tồn tại
func (s *TodoStore) Get(ctx context.Context, id string) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos WHERE id = $1", id)

	todo, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Put ghi một todo vào bảng
func (s *TodoStore) Put(ctx context.Context, todo *models.Todo) error {
	query := `INSERT INTO todos (id, title, description, card_color, is_completed, created_on, modified_on, completed_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, query,
		todo.ID, todo.Title, todo.Description, todo.CardColor, todo.IsCompleted,
		todo.Timestamps.CreatedOn, todo.Timestamps.ModifiedOn, todo.Timestamps.CompletedOn,
	)
	return err
}

// UpdateCompleted cập nhật isCompleted và trả về bản ghi sau khi cập nhật.
// Kiểm tra tồn tại và cập nhật là một bước nguyên tử duy nhất.
func (s *TodoStore) UpdateCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		"UPDATE todos SET is_completed = $2 WHERE id = $1 RETURNING "+todoColumns, id, completed)

	todo, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete xóa một todo theo ID, ErrTodoNotFound nếu không tồn tại
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}

	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTodoNotFound
	}
	return nil
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosecret/go-todo/models"
)

func TestListPosts(t *testing.T) {
	resp, env := doRequest(t, newTestApp(&stubTodoStore{}), http.MethodGet, "/feed/posts", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Success", env.Status)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.Empty(t, posts[0].ID)
}

func TestCreatePost(t *testing.T) {
	app := newTestApp(&stubTodoStore{})

	resp, env := doRequest(t, app, http.MethodPost, "/feed/post", `{"title":"My Post","content":"Some content"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Post created successfully", env.Message)

	var post models.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "My Post", post.Title)
	assert.Equal(t, "Some content", post.Content)
	assert.NotEmpty(t, post.ID)

	// Bài viết không được lưu, list vẫn chỉ trả về bài mẫu
	_, listEnv := doRequest(t, app, http.MethodGet, "/feed/posts", "")
	var posts []models.Post
	require.NoError(t, json.Unmarshal(listEnv.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
}

package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosecret/go-todo/models"
	"github.com/biosecret/go-todo/validation"
)

func TestValidateCreateTodoInput(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		details := validation.Validate(&models.CreateTodoInput{
			Title:       "Test Todo",
			Description: "Test Description",
		})
		assert.Nil(t, details)
	})

	t.Run("missing required fields are reported per field", func(t *testing.T) {
		details := validation.Validate(&models.CreateTodoInput{})
		require.Len(t, details, 2)

		fields := []string{details[0].Field, details[1].Field}
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "description")
		assert.Equal(t, "required", details[0].Rule)
	})

	t.Run("length bounds are enforced", func(t *testing.T) {
		details := validation.Validate(&models.CreateTodoInput{
			Title:       strings.Repeat("a", 256),
			Description: strings.Repeat("b", 1025),
			CardColor:   "#cddc3999",
		})
		require.Len(t, details, 3)
		for _, d := range details {
			assert.Equal(t, "max", d.Rule)
			assert.Contains(t, d.Message, "must be at most")
		}
	})

	t.Run("cardColor is optional", func(t *testing.T) {
		details := validation.Validate(&models.CreateTodoInput{
			Title:       "t",
			Description: "d",
		})
		assert.Nil(t, details)
	})
}

func TestValidateUpdateTodoInput(t *testing.T) {
	t.Run("isCompleted is required", func(t *testing.T) {
		details := validation.Validate(&models.UpdateTodoInput{})
		require.Len(t, details, 1)
		assert.Equal(t, "isCompleted", details[0].Field)
		assert.Equal(t, "required", details[0].Rule)
	})

	t.Run("explicit false is accepted", func(t *testing.T) {
		val := false
		details := validation.Validate(&models.UpdateTodoInput{IsCompleted: &val})
		assert.Nil(t, details)
	})
}

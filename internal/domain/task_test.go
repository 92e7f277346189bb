package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewTask(t *testing.T) {
	deadline := time.Date(2024, time.March, 9, 17, 5, 0, 0, time.UTC)

	tests := []struct {
		name        string
		id          int64
		title       string
		description *string
		completed   Completion
		wantField   string
	}{
		{name: "valid", id: 1, title: "Write report", description: strPtr("quarterly"), completed: Completed},
		{name: "valid without description", id: 2, title: "Call back", completed: Incomplete},
		{name: "zero id", id: 0, title: "x", completed: Completed, wantField: "id"},
		{name: "negative id", id: -4, title: "x", completed: Completed, wantField: "id"},
		{name: "empty title", id: 1, title: "", completed: Completed, wantField: "title"},
		{name: "long title", id: 1, title: strings.Repeat("a", MaxTitleLength+1), completed: Completed, wantField: "title"},
		{name: "bad completed", id: 1, title: "x", completed: "maybe", wantField: "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.id, tt.title, tt.description, &deadline, tt.completed)

			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, task)
				assert.Equal(t, tt.id, task.ID)
				assert.Equal(t, tt.title, task.Title)
				return
			}

			require.Error(t, err)
			assert.Nil(t, task)
			assert.True(t, errors.Is(err, ErrValidation))

			var taskErr *TaskError
			require.True(t, errors.As(err, &taskErr))
			assert.Equal(t, tt.wantField, taskErr.Field)
			assert.NotEmpty(t, taskErr.Message)
		})
	}
}

func TestTaskToMap(t *testing.T) {
	deadline := time.Date(2024, time.March, 9, 17, 5, 0, 0, time.UTC)

	task, err := NewTask(7, "Write report", strPtr("quarterly numbers"), &deadline, Incomplete)
	require.NoError(t, err)

	m := task.ToMap()
	assert.Equal(t, map[string]interface{}{
		"id":          int64(7),
		"title":       "Write report",
		"description": "quarterly numbers",
		"deadline":    "09/03/2024 17:05",
		"completed":   "N",
	}, m)
}

func TestTaskToMapNullFields(t *testing.T) {
	task, err := NewTask(3, "No deadline", nil, nil, Completed)
	require.NoError(t, err)

	m := task.ToMap()
	assert.Nil(t, m["description"])
	assert.Nil(t, m["deadline"])
	assert.Equal(t, "Y", m["completed"])
}

func TestParseCompletion(t *testing.T) {
	for _, in := range []string{"Y", "N"} {
		c, ok := ParseCompletion(in)
		assert.True(t, ok, in)
		assert.Equal(t, Completion(in), c)
	}

	for _, in := range []string{"", "y", "n", "YES", "1", " Y"} {
		_, ok := ParseCompletion(in)
		assert.False(t, ok, "%q should be rejected", in)
	}
}

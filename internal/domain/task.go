package domain

import (
	"time"
	"unicode/utf8"
)

// DeadlineLayout is the wire format of Task deadlines (DD/MM/YYYY HH:MM).
const DeadlineLayout = "02/01/2006 15:04"

// MaxTitleLength bounds the title column.
const MaxTitleLength = 255

// MaxDescriptionLength bounds the description column (MEDIUMTEXT sized).
const MaxDescriptionLength = 16777215

// Completion is the completed flag of a task as stored: "Y" or "N".
type Completion string

// Possible completion values.
const (
	Completed  Completion = "Y"
	Incomplete Completion = "N"
)

// ParseCompletion returns the Completion for s, which must be exactly "Y" or "N".
func ParseCompletion(s string) (Completion, bool) {
	switch Completion(s) {
	case Completed, Incomplete:
		return Completion(s), true
	default:
		return "", false
	}
}

// Task is a to-do item. Values are read-only once constructed.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Deadline    *time.Time
	Completed   Completion
}

// NewTask builds a Task from the values of a stored row and validates them.
// It returns a *TaskError describing the first invalid field.
func NewTask(
	id int64,
	title string,
	description *string,
	deadline *time.Time,
	completed Completion,
) (*Task, error) {
	t := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Completed:   completed,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks if the Task holds valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return newTaskError("id", "Task ID error")
	}

	if n := utf8.RuneCountInString(t.Title); n == 0 || n > MaxTitleLength {
		return newTaskError("title", "Task title error")
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > MaxDescriptionLength {
		return newTaskError("description", "Task description error")
	}

	if _, ok := ParseCompletion(string(t.Completed)); !ok {
		return newTaskError("completed", "Task completed must be Y or N")
	}

	return nil
}

// ToMap projects the task onto the plain key/value structure used in
// response payloads. Absent description and deadline render as null.
func (t *Task) ToMap() map[string]interface{} {
	var description interface{}
	if t.Description != nil {
		description = *t.Description
	}

	var deadline interface{}
	if t.Deadline != nil {
		deadline = t.Deadline.Format(DeadlineLayout)
	}

	return map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": description,
		"deadline":    deadline,
		"completed":   string(t.Completed),
	}
}

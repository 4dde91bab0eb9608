package project

import (
	"time"

	"github.com/google/uuid"
)

// Event names.
const (
	EventCreated       = "project.created"
	EventRenamed       = "project.renamed"
	EventTodoAdded     = "project.todo_added"
	EventTodoCompleted = "project.todo_completed"
)

// Created is recorded when a new project is built.
type Created struct {
	ProjectID uuid.UUID
	Name      string
}

func (Created) EventName() string { return EventCreated }

// Renamed is recorded by Project.Rename.
type Renamed struct {
	ProjectID uuid.UUID
	From, To  string
}

func (Renamed) EventName() string { return EventRenamed }

// TodoAdded is recorded by Project.AddTodo.
type TodoAdded struct {
	ProjectID uuid.UUID
	TodoID    int64
	Title     string
}

func (TodoAdded) EventName() string { return EventTodoAdded }

// TodoCompleted is recorded by Project.CompleteTodo.
type TodoCompleted struct {
	ProjectID uuid.UUID
	TodoID    int64
	At        time.Time
}

func (TodoCompleted) EventName() string { return EventTodoCompleted }

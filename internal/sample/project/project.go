// Package project is a sample aggregate built on the domain package: a named
// set of todos whose state changes are recorded as domain events.
package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/internal/sample/todo"
)

// Field limits enforced by Builder and the domain methods.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

// ErrTodoNotFound is returned when a todo id is not part of the project.
var ErrTodoNotFound = errors.New("todo not found in project")

// Project is the aggregate root owning a list of todos. Every successful
// state change records an event and increments the version.
type Project struct {
	domain.AggregateRoot[uuid.UUID, int]

	name        string
	description string
	todos       []*todo.Todo
}

// DTO is the transfer form of a Project. An empty ID denotes a project that
// has not been stored yet.
type DTO struct {
	ID          string     `json:"id,omitempty" koanf:"id"`
	Version     int        `json:"version" koanf:"version"`
	Name        string     `json:"name" koanf:"name"`
	Description string     `json:"description,omitempty" koanf:"description"`
	Todos       []todo.DTO `json:"todos" koanf:"todos"`
}

var _ domain.Entity[uuid.UUID, DTO] = (*Project)(nil)

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// Description returns the free-form description.
func (p *Project) Description() string {
	return p.description
}

// Todos returns the project's todos in insertion order.
func (p *Project) Todos() []*todo.Todo {
	return slices.Clone(p.todos)
}

// Progress is the average progress of the project's todos.
func (p *Project) Progress() int {
	return todo.AverageProgress(p.todos)
}

// Equal reports whether p and other are the same stored project.
func (p *Project) Equal(other *Project) bool {
	return domain.SameEntity[uuid.UUID](p, other)
}

// ToDTO returns the transfer form of p.
func (p *Project) ToDTO() DTO {
	dto := DTO{
		Version:     p.Version(),
		Name:        p.name,
		Description: p.description,
		Todos:       make([]todo.DTO, len(p.todos)),
	}
	if !p.IsTransient() {
		dto.ID = p.ID().String()
	}
	for i, t := range p.todos {
		dto.Todos[i] = t.ToDTO()
	}
	return dto
}

// Rename changes the project name. Renaming to the current name records
// nothing.
func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if kc := checkName(name); kc != nil {
		return p.rejected(*kc)
	}
	if name == p.name {
		return nil
	}

	from := p.name
	p.name = name
	p.changed(Renamed{ProjectID: p.ID(), From: from, To: name})
	return nil
}

// AddTodo creates a todo from b and appends it. A todo without an id is
// assigned the next free one. Titles must be unique within the project,
// ignoring case.
func (p *Project) AddTodo(b *todo.Builder) (*todo.Todo, error) {
	if b.ID() == 0 {
		b.WithID(p.nextTodoID())
	}
	t, err := b.Create()
	if err != nil {
		return nil, fmt.Errorf("adding todo: %w", err)
	}

	for _, existing := range p.todos {
		if existing.Equal(t) {
			return nil, p.rejected(domain.KeyCodeWithIntDetail("Todos", "IdInvalid", int(t.ID())))
		}
		if strings.EqualFold(existing.Title(), t.Title()) {
			return nil, p.rejected(domain.KeyCodeWithStringDetail("Todos", "DuplicateTitle", t.Title()))
		}
	}

	p.todos = append(p.todos, t)
	p.changed(TodoAdded{ProjectID: p.ID(), TodoID: t.ID(), Title: t.Title()})
	return t, nil
}

// CompleteTodo marks the todo with the given id done. Completing a todo that
// is already done records nothing.
func (p *Project) CompleteTodo(id int64, at time.Time) error {
	i := slices.IndexFunc(p.todos, func(t *todo.Todo) bool { return t.ID() == id })
	if i < 0 {
		return fmt.Errorf("completing todo %d: %w", id, ErrTodoNotFound)
	}
	if p.todos[i].Complete(at) {
		p.changed(TodoCompleted{ProjectID: p.ID(), TodoID: id, At: at})
	}
	return nil
}

func (p *Project) changed(e domain.Event) {
	p.RecordEvent(e)
	p.SetVersion(p.Version() + 1)
}

func (p *Project) rejected(kcs ...domain.KeyCode) error {
	return &domain.ValidationError{
		Entity: "Project",
		Errors: domain.NewValidationErrorCollection(kcs...),
	}
}

func (p *Project) nextTodoID() int64 {
	var highest int64
	for _, t := range p.todos {
		highest = max(highest, t.ID())
	}
	return highest + 1
}

func checkName(name string) *domain.KeyCode {
	var kc domain.KeyCode
	switch {
	case name == "":
		kc = domain.NewKeyCode("Name", "NameRequired")
	case len(name) > MaxNameLength:
		kc = domain.KeyCodeWithIntDetail("Name", "NameTooLong", MaxNameLength)
	default:
		return nil
	}
	return &kc
}

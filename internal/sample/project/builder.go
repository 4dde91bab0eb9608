package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/internal/sample/todo"
)

// Builder buffers a Project and its todos. Each todo has its own child
// builder whose failures are reported under "Todos[i].".
//
// Creating a new project numbers the child builders that have no id yet,
// continuing after the highest explicit id; the assigned ids stay on the
// child builders. They are reset if creation fails.
type Builder struct {
	domain.Builder[*Project, DTO]

	rawID       string
	id          uuid.UUID
	version     int
	name        string
	description string
	todos       []*todo.Builder
}

// NewBuilder returns an empty Builder. A project built without an id is
// assigned a fresh random one and records Created.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Builder = domain.NewBuilder(domain.Steps[*Project, DTO]{
		Validate: b.validate,
		Build:    b.build,
		Populate: b.populate,
	})
	return b
}

// WithID sets the project identity.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id, b.rawID = id, ""
	return b
}

// WithVersion sets the stored version.
func (b *Builder) WithVersion(v int) *Builder {
	b.version = v
	return b
}

// WithName sets the project name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithDescription sets the free-form description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// AddTodo appends and returns a child builder for a new todo.
func (b *Builder) AddTodo() *todo.Builder {
	tb := todo.NewBuilder()
	if b.IsExisting() {
		tb.MarkAsExisting()
	}
	b.todos = append(b.todos, tb)
	return tb
}

// MarkAsExisting flags the builder, and every child todo builder present or
// added later, as rebuilding a stored project. Validation is skipped and no
// Created event is recorded.
func (b *Builder) MarkAsExisting() *Builder {
	b.Builder.MarkAsExisting()
	for _, tb := range b.todos {
		tb.MarkAsExisting()
	}
	return b
}

func (b *Builder) populate(dto DTO) {
	b.rawID = strings.TrimSpace(dto.ID)
	b.id = uuid.Nil
	if id, err := uuid.Parse(b.rawID); err == nil {
		b.id, b.rawID = id, ""
	}
	b.version = dto.Version
	b.name = dto.Name
	b.description = dto.Description

	b.todos = b.todos[:0]
	for _, t := range dto.Todos {
		b.AddTodo().WithDTO(t)
	}
}

func (b *Builder) validate() {
	if b.rawID != "" {
		b.AddValidationErrorString("Id", "IdInvalid", b.rawID)
	}
	if b.version < 0 {
		b.AddValidationErrorInt("Version", "VersionInvalid", b.version)
	}
	b.AddKeyCode(checkName(strings.TrimSpace(b.name)))
	if len(b.description) > MaxDescriptionLength {
		b.AddValidationErrorInt("Description", "DescriptionTooLong", MaxDescriptionLength)
	}

	titles := make(map[string]bool, len(b.todos))
	ids := make(map[int64]bool, len(b.todos))
	for i, tb := range b.todos {
		b.ValidateChildBuilder(tb, domain.WithPrefix(fmt.Sprintf("Todos[%d]", i)))

		if id := tb.ID(); id > 0 {
			if ids[id] {
				b.AddValidationErrorString("Todos", "IdInvalid", strconv.FormatInt(id, 10))
			}
			ids[id] = true
		}

		title := strings.ToLower(strings.TrimSpace(tb.Title()))
		if title == "" {
			continue
		}
		if titles[title] {
			b.AddValidationErrorString("Todos", "DuplicateTitle", strings.TrimSpace(tb.Title()))
		}
		titles[title] = true
	}
}

func (b *Builder) build() (*Project, error) {
	id := b.id
	isNew := id == uuid.Nil && !b.IsExisting()
	if isNew {
		id = uuid.New()
	}

	p := &Project{
		AggregateRoot: domain.NewAggregateRoot(id, b.version),
		name:          strings.TrimSpace(b.name),
		description:   b.description,
		todos:         make([]*todo.Todo, 0, len(b.todos)),
	}

	var next int64
	for _, tb := range b.todos {
		next = max(next, tb.ID())
	}
	var numbered []*todo.Builder
	for i, tb := range b.todos {
		if tb.ID() == 0 && !b.IsExisting() {
			next++
			tb.WithID(next)
			numbered = append(numbered, tb)
		}
		t, err := tb.Create()
		if err != nil {
			for _, nb := range numbered {
				nb.WithID(0)
			}
			return nil, fmt.Errorf("building todo %d: %w", i, err)
		}
		p.todos = append(p.todos, t)
	}

	if isNew {
		p.RecordEvent(Created{ProjectID: id, Name: p.name})
	}
	return p, nil
}

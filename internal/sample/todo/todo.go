// Package todo is a sample entity built on the domain package: a task with
// a title, workflow status and progress, created only through Builder.
package todo

import (
	"time"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

// Field limits enforced by Builder.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MinProgress          = 0
	MaxProgress          = 100
)

// Todo is a task item. The zero ID marks a todo that has not been stored yet.
type Todo struct {
	domain.Base[int64]

	title       string
	description string
	status      Status
	category    Category
	progress    int
	createdAt   time.Time
	completedAt time.Time
}

// DTO is the transfer form of a Todo.
type DTO struct {
	ID          int64     `json:"id" koanf:"id"`
	Title       string    `json:"title" koanf:"title"`
	Description string    `json:"description,omitempty" koanf:"description"`
	Status      string    `json:"status,omitempty" koanf:"status"`
	Category    string    `json:"category,omitempty" koanf:"category"`
	Progress    int       `json:"progress" koanf:"progress"`
	CreatedAt   time.Time `json:"created_at,omitzero" koanf:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitzero" koanf:"completed_at"`
}

var _ domain.Entity[int64, DTO] = (*Todo)(nil)

// Title returns the trimmed title.
func (t *Todo) Title() string {
	return t.title
}

// Description returns the free-form description.
func (t *Todo) Description() string {
	return t.description
}

// Status returns the workflow status.
func (t *Todo) Status() Status {
	return t.status
}

// Category returns the todo category.
func (t *Todo) Category() Category {
	return t.category
}

// Progress returns the completion percentage.
func (t *Todo) Progress() int {
	return t.progress
}

// CreatedAt returns when the todo was created, or the zero time.
func (t *Todo) CreatedAt() time.Time {
	return t.createdAt
}

// CompletedAt returns when the todo was completed, or the zero time.
func (t *Todo) CompletedAt() time.Time {
	return t.completedAt
}

// IsDone reports whether the todo is completed.
func (t *Todo) IsDone() bool {
	return t.status == StatusDone
}

// Complete marks the todo done at the given time with full progress. It
// reports false, changing nothing, when the todo was already done.
func (t *Todo) Complete(at time.Time) bool {
	if t.IsDone() {
		return false
	}
	t.status = StatusDone
	t.progress = MaxProgress
	t.completedAt = at
	return true
}

// Equal reports whether t and other are the same stored todo.
func (t *Todo) Equal(other *Todo) bool {
	return domain.SameEntity[int64](t, other)
}

// Hash is consistent with Equal.
func (t *Todo) Hash() uint64 {
	return domain.EntityHash[int64](t)
}

// ToDTO returns the transfer form of t.
func (t *Todo) ToDTO() DTO {
	return DTO{
		ID:          t.ID(),
		Title:       t.title,
		Description: t.description,
		Status:      string(t.status),
		Category:    string(t.category),
		Progress:    t.progress,
		CreatedAt:   t.createdAt,
		CompletedAt: t.completedAt,
	}
}

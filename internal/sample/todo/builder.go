package todo

import (
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

// Builder buffers the fields of a Todo and validates them before creation.
// A new builder defaults to StatusPending and CategoryOther.
type Builder struct {
	domain.Builder[*Todo, DTO]

	id          int64
	title       string
	description string
	status      Status
	category    Category
	progress    int
	createdAt   time.Time
	completedAt time.Time
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	b := &Builder{
		status:   StatusPending,
		category: CategoryOther,
	}
	b.Builder = domain.NewBuilder(domain.Steps[*Todo, DTO]{
		Validate: b.validate,
		Build:    b.build,
		Populate: b.populate,
	})
	return b
}

// WithID sets the identifier. Zero means not assigned yet.
func (b *Builder) WithID(id int64) *Builder {
	b.id = id
	return b
}

// WithTitle sets the title.
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithDescription sets the description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// WithStatus sets the workflow status.
func (b *Builder) WithStatus(s Status) *Builder {
	b.status = s
	return b
}

// WithCategory sets the category.
func (b *Builder) WithCategory(c Category) *Builder {
	b.category = c
	return b
}

// WithProgress sets the completion percentage.
func (b *Builder) WithProgress(p int) *Builder {
	b.progress = p
	return b
}

// WithCreatedAt sets the creation time.
func (b *Builder) WithCreatedAt(at time.Time) *Builder {
	b.createdAt = at
	return b
}

// WithCompletedAt sets the completion time.
func (b *Builder) WithCompletedAt(at time.Time) *Builder {
	b.completedAt = at
	return b
}

// ID returns the buffered identifier.
func (b *Builder) ID() int64 {
	return b.id
}

// Title returns the buffered title.
func (b *Builder) Title() string {
	return b.title
}

// WithDTO copies every field of dto into the builder. Empty status and
// category leave the current values in place.
func (b *Builder) WithDTO(dto DTO) *Builder {
	b.populate(dto)
	return b
}

// MarkAsExisting flags the builder as rebuilding a stored todo.
func (b *Builder) MarkAsExisting() *Builder {
	b.Builder.MarkAsExisting()
	return b
}

func (b *Builder) populate(dto DTO) {
	b.id = dto.ID
	b.title = dto.Title
	b.description = dto.Description
	if dto.Status != "" {
		b.status = Status(dto.Status)
	}
	if dto.Category != "" {
		b.category = Category(dto.Category)
	}
	b.progress = dto.Progress
	b.createdAt = dto.CreatedAt
	b.completedAt = dto.CompletedAt
}

func (b *Builder) validate() {
	if b.id < 0 {
		b.AddValidationErrorString("Id", "IdInvalid", strconv.FormatInt(b.id, 10))
	}

	title := strings.TrimSpace(b.title)
	switch {
	case title == "":
		b.AddValidationError("Title", "TitleRequired")
	case len(title) > MaxTitleLength:
		b.AddValidationErrorInt("Title", "TitleTooLong", MaxTitleLength)
	}

	if len(b.description) > MaxDescriptionLength {
		b.AddValidationErrorInt("Description", "DescriptionTooLong", MaxDescriptionLength)
	}
	if !b.status.IsValid() {
		b.AddValidationErrorList("Status", "StatusInvalid", Statuses())
	}
	if !b.category.IsValid() {
		b.AddValidationErrorList("Category", "CategoryInvalid", Categories())
	}
	if b.progress < MinProgress || b.progress > MaxProgress {
		b.AddValidationErrorString("Progress", "ProgressOutOfRange",
			strconv.Itoa(MinProgress)+"-"+strconv.Itoa(MaxProgress))
	}
}

func (b *Builder) build() (*Todo, error) {
	return &Todo{
		Base:        domain.NewBase(b.id),
		title:       strings.TrimSpace(b.title),
		description: b.description,
		status:      b.status,
		category:    b.category,
		progress:    b.progress,
		createdAt:   b.createdAt,
		completedAt: b.completedAt,
	}, nil
}

package domain

import (
	"reflect"
)

// Steps supplies the entity-specific parts of a Builder.
//
// Validate inspects the buffered fields and reports each violation through the
// builder's AddValidationError methods; calls are retained in order. Build
// constructs the entity from the buffered fields, assuming they are valid.
// Populate sets every field, child builders included, from a transfer
// representation; it is optional and only needed by CreateFromDTO.
type Steps[E, DTO any] struct {
	Validate func()
	Build    func() (E, error)
	Populate func(DTO)
}

// ChildBuilder is the view of a builder that a parent needs to fold the
// child's failures into its own.
type ChildBuilder interface {
	CanCreate() bool
	ValidationErrors() ValidationErrorCollection
	EntityName() string
}

// Builder implements the validate-then-construct pipeline shared by every
// entity builder. Concrete builders embed it, keep their field buffer
// alongside, and hand their hooks to NewBuilder:
//
//	type Builder struct {
//	    domain.Builder[*Todo, DTO]
//	    title string
//	}
//
//	func NewBuilder() *Builder {
//	    b := &Builder{}
//	    b.Builder = domain.NewBuilder(domain.Steps[*Todo, DTO]{
//	        Validate: b.validate,
//	        Build:    b.build,
//	        Populate: b.populate,
//	    })
//	    return b
//	}
//
// A Builder is not safe for concurrent use: CanCreate rewrites the shared
// failure buffer.
type Builder[E, DTO any] struct {
	steps    Steps[E, DTO]
	errors   []KeyCode
	existing bool
}

// NewBuilder returns a Builder running the given steps. It panics if Validate
// or Build is nil.
func NewBuilder[E, DTO any](steps Steps[E, DTO]) Builder[E, DTO] {
	if steps.Validate == nil || steps.Build == nil {
		panic("domain: NewBuilder requires Validate and Build steps")
	}
	return Builder[E, DTO]{steps: steps}
}

// CanCreate discards the failures of any previous pass, runs validation
// against the current field state, and reports whether no failures were
// recorded. Calling it repeatedly with unchanged fields yields the same
// failures each time.
func (b *Builder[E, DTO]) CanCreate() bool {
	b.errors = b.errors[:0]
	b.steps.Validate()
	return len(b.errors) == 0
}

// ValidationErrors returns a snapshot of the failures recorded by the most
// recent validation pass.
func (b *Builder[E, DTO]) ValidationErrors() ValidationErrorCollection {
	return NewValidationErrorCollection(b.errors...)
}

// Create builds the entity. Unless the builder is marked as existing, the
// fields are validated first and a *ValidationError carrying every failure is
// returned instead of an entity when validation fails.
func (b *Builder[E, DTO]) Create() (E, error) {
	if !b.existing && !b.CanCreate() {
		var zero E
		return zero, &ValidationError{
			Entity: b.EntityName(),
			Errors: b.ValidationErrors(),
		}
	}
	return b.steps.Build()
}

// CreateFromDTO populates the fields from dto and then behaves like Create.
func (b *Builder[E, DTO]) CreateFromDTO(dto DTO) (E, error) {
	if b.steps.Populate == nil {
		var zero E
		return zero, ErrNoPopulate
	}
	b.steps.Populate(dto)
	return b.Create()
}

// MarkAsExisting flags the builder as rebuilding an entity that was loaded
// from a store. Create then skips validation entirely. Child builders are not
// marked; builders owning children shadow this method to cascade the flag.
func (b *Builder[E, DTO]) MarkAsExisting() *Builder[E, DTO] {
	b.existing = true
	return b
}

// IsExisting reports whether MarkAsExisting was called.
func (b *Builder[E, DTO]) IsExisting() bool {
	return b.existing
}

// EntityName returns the name of the entity type, pointer indirections
// stripped. It is the default key prefix when a parent validates this builder
// as a child.
func (b *Builder[E, DTO]) EntityName() string {
	t := reflect.TypeFor[E]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// ChildOption adjusts how a child builder's failures are re-keyed.
type ChildOption func(*childOptions)

type childOptions struct {
	excludePrefix  bool
	prefixSet      bool
	prefixOverride string
}

// ExcludePrefix copies the child's keys verbatim.
func ExcludePrefix() ChildOption {
	return func(o *childOptions) {
		o.excludePrefix = true
	}
}

// WithPrefix replaces the child's entity name as the key prefix. An empty
// prefix behaves like ExcludePrefix.
func WithPrefix(prefix string) ChildOption {
	return func(o *childOptions) {
		o.prefixSet = true
		o.prefixOverride = prefix
	}
}

// ValidateChildBuilder validates child and, if it fails, re-records each of its
// failures on this builder with the key prefixed by "{prefix}.". The prefix is
// the child's entity name unless WithPrefix overrides it or ExcludePrefix
// drops it. A nil child is skipped. A child must never reference its parent.
func (b *Builder[E, DTO]) ValidateChildBuilder(child ChildBuilder, opts ...ChildOption) {
	if isNil(child) {
		return
	}
	if child.CanCreate() {
		return
	}

	var o childOptions
	for _, opt := range opts {
		opt(&o)
	}

	var prefix string
	switch {
	case o.excludePrefix:
	case o.prefixSet:
		prefix = o.prefixOverride
	default:
		prefix = child.EntityName()
	}

	for kc := range child.ValidationErrors().Values() {
		b.errors = append(b.errors, kc.WithKeyPrefix(prefix))
	}
}

// AddValidationError records a failure for key.
func (b *Builder[E, DTO]) AddValidationError(key, code string) {
	b.errors = append(b.errors, NewKeyCode(key, code))
}

// AddValidationErrorInt records a failure whose code carries an integer
// detail, as in "ValueTooShort:3".
func (b *Builder[E, DTO]) AddValidationErrorInt(key, code string, value int) {
	b.errors = append(b.errors, KeyCodeWithIntDetail(key, code, value))
}

// AddValidationErrorString records a failure whose code carries a string
// detail.
func (b *Builder[E, DTO]) AddValidationErrorString(key, code, value string) {
	b.errors = append(b.errors, KeyCodeWithStringDetail(key, code, value))
}

// AddValidationErrorList records a failure whose code carries a
// semicolon-joined list detail.
func (b *Builder[E, DTO]) AddValidationErrorList(key, code string, values []string) {
	b.errors = append(b.errors, KeyCodeWithStringListDetail(key, code, values))
}

// AddKeyCode records kc as is. A nil kc records nothing.
func (b *Builder[E, DTO]) AddKeyCode(kc *KeyCode) {
	if kc == nil {
		return
	}
	b.errors = append(b.errors, *kc)
}

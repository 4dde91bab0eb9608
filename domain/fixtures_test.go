package domain_test

import (
	"strings"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

// childValue is an owned value object built by childBuilder.
type childValue struct {
	value string
}

type childDTO struct {
	Value string
}

func (c childValue) ToDTO() childDTO {
	return childDTO{Value: c.value}
}

type childBuilder struct {
	domain.Builder[childValue, childDTO]
	value string
}

func newChildBuilder() *childBuilder {
	b := &childBuilder{}
	b.Builder = domain.NewBuilder(domain.Steps[childValue, childDTO]{
		Validate: b.validate,
		Build:    b.build,
		Populate: b.populate,
	})
	return b
}

func (b *childBuilder) WithValue(v string) *childBuilder {
	b.value = v
	return b
}

func (b *childBuilder) populate(dto childDTO) {
	b.WithValue(dto.Value)
}

func (b *childBuilder) build() (childValue, error) {
	return childValue{value: b.value}, nil
}

func (b *childBuilder) validate() {
	switch {
	case strings.TrimSpace(b.value) == "":
		b.AddValidationError("Value", "ValueRequired")
	case len(b.value) < 3:
		b.AddValidationErrorInt("Value", "ValueTooShort", 3)
	}
}

// testEntity is an entity with an int identity and one owned child.
type testEntity struct {
	domain.Base[int]
	value string
	child childValue
}

type testDTO struct {
	ID    int
	Value string
	Child childDTO
}

var _ domain.Entity[int, testDTO] = (*testEntity)(nil)

func newTestEntity(id int, value, child string) *testEntity {
	return &testEntity{Base: domain.NewBase(id), value: value, child: childValue{value: child}}
}

func (e *testEntity) ToDTO() testDTO {
	return testDTO{ID: e.ID(), Value: e.value, Child: e.child.ToDTO()}
}

func (e *testEntity) Equal(other *testEntity) bool {
	return domain.SameEntity[int](e, other)
}

// otherEntity shares testEntity's identity type.
type otherEntity struct {
	domain.Base[int]
}

type testEntityBuilder struct {
	domain.Builder[*testEntity, testDTO]
	id    int
	value string
	child *childBuilder
}

func newTestEntityBuilder() *testEntityBuilder {
	b := &testEntityBuilder{}
	b.Builder = domain.NewBuilder(domain.Steps[*testEntity, testDTO]{
		Validate: b.validate,
		Build:    b.build,
		Populate: b.populate,
	})
	return b
}

func (b *testEntityBuilder) WithID(id int) *testEntityBuilder {
	b.id = id
	return b
}

func (b *testEntityBuilder) WithValue(v string) *testEntityBuilder {
	b.value = v
	return b
}

func (b *testEntityBuilder) WithChild() *childBuilder {
	b.child = newChildBuilder()
	return b.child
}

func (b *testEntityBuilder) populate(dto testDTO) {
	b.WithID(dto.ID).WithValue(dto.Value)
	b.WithChild().populate(dto.Child)
}

func (b *testEntityBuilder) build() (*testEntity, error) {
	child, err := b.child.Create()
	if err != nil {
		return nil, err
	}
	return &testEntity{Base: domain.NewBase(b.id), value: b.value, child: child}, nil
}

func (b *testEntityBuilder) validate() {
	switch {
	case strings.TrimSpace(b.value) == "":
		b.AddValidationError("Value", "ValueRequired")
	case len(b.value) < 3:
		b.AddValidationErrorInt("Value", "ValueTooShort", 3)
	case b.value == "List":
		b.AddValidationErrorList("Value", "ValueList", []string{"value1", "value2"})
	case b.value == "String":
		b.AddValidationErrorString("Value", "ValueString", "value")
	}

	if b.id < 1 {
		b.AddValidationErrorInt("Id", "IdInvalid", b.id)
	}

	b.ValidateChildBuilder(b.child, domain.WithPrefix("SubValue"))
}

// testEvent is a domain event carrying a single value.
type testEvent struct {
	Value int
}

func (testEvent) EventName() string { return "test.event" }

type testAggregate struct {
	domain.AggregateRoot[int, int]
	value string
}

func newTestAggregate(id, version int, value string) *testAggregate {
	return &testAggregate{AggregateRoot: domain.NewAggregateRoot(id, version), value: value}
}

func (a *testAggregate) Touch(v int) {
	a.RecordEvent(testEvent{Value: v})
	a.SetVersion(a.Version() + 1)
}

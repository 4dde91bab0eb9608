package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

func TestBuilder_CanCreate_NoValidationErrors(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(1).WithValue("Test")
	b.WithChild().WithValue("Hello")

	require.True(t, b.CanCreate())
	assert.True(t, b.ValidationErrors().IsEmpty())

	e, err := b.Create()
	require.NoError(t, err)
	assert.Equal(t, testDTO{ID: 1, Value: "Test", Child: childDTO{Value: "Hello"}}, e.ToDTO())
}

func TestBuilder_Create_InvalidID(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(0).WithValue("Test")
	b.WithChild().WithValue("Hello")

	require.False(t, b.CanCreate())
	errs := b.ValidationErrors()
	require.Equal(t, 1, errs.Len())
	first, err := errs.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Id", first.Key)
	assert.Equal(t, "IdInvalid:0", first.Code)

	e, err := b.Create()
	assert.Nil(t, e)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuilder_Create_ChildErrorIsPrefixed(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(1).WithValue("Test")
	b.WithChild().WithValue("Hi")

	require.False(t, b.CanCreate())
	assert.Equal(t, []string{"SubValue.Value"}, b.ValidationErrors().Keys())

	_, err := b.Create()
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuilder_DetailEncodedCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantCode string
	}{
		{name: "string detail", value: "String", wantCode: "ValueString:value"},
		{name: "list detail", value: "List", wantCode: "ValueList:value1;value2"},
		{name: "int detail", value: "ab", wantCode: "ValueTooShort:3"},
		{name: "no detail", value: "  ", wantCode: "ValueRequired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newTestEntityBuilder().WithID(1).WithValue(tt.value)
			b.WithChild().WithValue("Hello")

			if b.CanCreate() {
				t.Fatal("CanCreate() = true, want false")
			}
			want := domain.NewValidationErrorCollection(domain.NewKeyCode("Value", tt.wantCode))
			if got := b.ValidationErrors(); !got.Equal(want) {
				t.Errorf("ValidationErrors() = %v, want %v", got, want)
			}
			if _, err := b.Create(); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestBuilder_Create_ErrorCarriesCollection(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(-2).WithValue("")
	b.WithChild().WithValue("")

	_, err := b.Create()

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "testEntity", verr.Entity)
	assert.Equal(t, "Value: ValueRequired, Id: IdInvalid:-2, SubValue.Value: ValueRequired", verr.Errors.String())
	assert.True(t, verr.Errors.Equal(b.ValidationErrors()))
	assert.Contains(t, err.Error(), "cannot create testEntity")
}

func TestBuilder_Create_ExistingSkipsValidation(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(1).WithValue("")
	b.WithChild().WithValue("Hello")
	b.MarkAsExisting()

	e, err := b.Create()
	require.NoError(t, err)
	assert.Equal(t, "", e.ToDTO().Value)
	assert.True(t, b.IsExisting())
	assert.True(t, b.ValidationErrors().IsEmpty(), "validation must not run for existing builders")
}

func TestBuilder_MarkAsExisting_DoesNotCascade(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(1).WithValue("Test")
	b.WithChild().WithValue("")
	b.MarkAsExisting()

	_, err := b.Create()

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "childValue", verr.Entity)
}

func TestBuilder_CanCreate_IsIdempotent(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(0).WithValue("ab")
	b.WithChild().WithValue("Hi")

	b.CanCreate()
	first := b.ValidationErrors()
	b.CanCreate()
	second := b.ValidationErrors()

	assert.Equal(t, 3, first.Len())
	assert.True(t, first.Equal(second))
}

func TestBuilder_CanCreate_RecomputesFromFields(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder().WithID(0).WithValue("Test")
	b.WithChild().WithValue("Hello")
	require.False(t, b.CanCreate())
	snapshot := b.ValidationErrors()

	b.WithID(3)

	require.True(t, b.CanCreate())
	assert.True(t, b.ValidationErrors().IsEmpty())
	assert.Equal(t, 1, snapshot.Len(), "earlier snapshot must not change")
}

func TestBuilder_ValidationErrors_EmptyBeforeValidation(t *testing.T) {
	t.Parallel()

	b := newTestEntityBuilder()

	assert.True(t, b.ValidationErrors().IsEmpty())
}

func TestBuilder_CreateFromDTO(t *testing.T) {
	t.Parallel()

	t.Run("valid dto round-trips", func(t *testing.T) {
		t.Parallel()

		dto := testDTO{ID: 7, Value: "Seven", Child: childDTO{Value: "child"}}
		e, err := newTestEntityBuilder().CreateFromDTO(dto)

		require.NoError(t, err)
		assert.Equal(t, dto, e.ToDTO())
	})

	t.Run("invalid dto is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := newTestEntityBuilder().CreateFromDTO(testDTO{ID: 7, Value: "Seven", Child: childDTO{Value: "c"}})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "SubValue.Value: ValueTooShort:3", verr.Errors.String())
	})

	t.Run("existing builder accepts legacy data", func(t *testing.T) {
		t.Parallel()

		b := newTestEntityBuilder()
		b.MarkAsExisting()
		e, err := b.CreateFromDTO(testDTO{ID: 7, Value: "x", Child: childDTO{Value: "child"}})

		require.NoError(t, err)
		assert.Equal(t, "x", e.ToDTO().Value)
	})
}

func TestBuilder_CreateFromDTO_WithoutPopulate(t *testing.T) {
	t.Parallel()

	b := domain.NewBuilder(domain.Steps[int, int]{
		Validate: func() {},
		Build:    func() (int, error) { return 1, nil },
	})

	_, err := b.CreateFromDTO(1)

	require.ErrorIs(t, err, domain.ErrNoPopulate)
}

func TestNewBuilder_PanicsWithoutSteps(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		domain.NewBuilder(domain.Steps[int, int]{Validate: func() {}})
	})
	assert.Panics(t, func() {
		domain.NewBuilder(domain.Steps[int, int]{Build: func() (int, error) { return 0, nil }})
	})
}

// parentBuilder exercises ValidateChildBuilder options directly.
type parentBuilder struct {
	domain.Builder[string, string]
	child *childBuilder
	opts  []domain.ChildOption
	extra *domain.KeyCode
}

func newParentBuilder(child *childBuilder, opts ...domain.ChildOption) *parentBuilder {
	b := &parentBuilder{child: child, opts: opts}
	b.Builder = domain.NewBuilder(domain.Steps[string, string]{
		Validate: func() {
			b.AddKeyCode(b.extra)
			b.ValidateChildBuilder(b.child, b.opts...)
		},
		Build: func() (string, error) { return "parent", nil },
	})
	return b
}

func TestBuilder_ValidateChildBuilder_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		child    *childBuilder
		opts     []domain.ChildOption
		wantKeys []string
	}{
		{
			name:     "defaults to child entity name",
			child:    newChildBuilder().WithValue("x"),
			wantKeys: []string{"childValue.Value"},
		},
		{
			name:     "prefix override",
			child:    newChildBuilder().WithValue("x"),
			opts:     []domain.ChildOption{domain.WithPrefix("SubValue")},
			wantKeys: []string{"SubValue.Value"},
		},
		{
			name:     "empty override drops the prefix",
			child:    newChildBuilder().WithValue("x"),
			opts:     []domain.ChildOption{domain.WithPrefix("")},
			wantKeys: []string{"Value"},
		},
		{
			name:     "exclude prefix wins over override",
			child:    newChildBuilder().WithValue("x"),
			opts:     []domain.ChildOption{domain.WithPrefix("SubValue"), domain.ExcludePrefix()},
			wantKeys: []string{"Value"},
		},
		{
			name:     "valid child adds nothing",
			child:    newChildBuilder().WithValue("valid"),
			wantKeys: []string{},
		},
		{
			name:     "nil child is skipped",
			child:    nil,
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newParentBuilder(tt.child, tt.opts...)
			b.CanCreate()

			assert.Equal(t, tt.wantKeys, b.ValidationErrors().Keys())
		})
	}
}

func TestBuilder_AddKeyCode(t *testing.T) {
	t.Parallel()

	b := newParentBuilder(nil)
	require.True(t, b.CanCreate(), "nil KeyCode records nothing")

	kc := domain.NewKeyCode("Name", "NameTaken")
	b.extra = &kc

	require.False(t, b.CanCreate())
	assert.Equal(t, "Name: NameTaken", b.ValidationErrors().String())
}

func TestBuilder_EntityName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "testEntity", newTestEntityBuilder().EntityName())
	assert.Equal(t, "childValue", newChildBuilder().EntityName())
}

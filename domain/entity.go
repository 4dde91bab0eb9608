package domain

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Identifiable is anything distinguished by an identity value.
type Identifiable[ID comparable] interface {
	ID() ID
}

// Entity is an Identifiable that can produce an immutable transfer
// representation of its externally visible state.
type Entity[ID comparable, DTO any] interface {
	Identifiable[ID]
	ToDTO() DTO
}

// Base carries the identity of an entity. Embed it in concrete entity types;
// the identity is fixed at construction.
type Base[ID comparable] struct {
	id ID
}

// NewBase returns a Base holding id.
func NewBase[ID comparable](id ID) Base[ID] {
	return Base[ID]{id: id}
}

// ID returns the entity identity.
func (b Base[ID]) ID() ID {
	return b.id
}

// IsTransient reports whether the identity is still the zero value, meaning
// the entity has not been assigned an identity yet.
func (b Base[ID]) IsTransient() bool {
	var zero ID
	return b.id == zero
}

// SameEntity reports whether a and b denote the same entity.
//
// Two nil entities are equal and a nil entity never equals a non-nil one.
// Otherwise both must share a dynamic type and hold equal identities. An
// entity whose identity is the zero value is never equal to anything, not even
// another unassigned instance of the same type.
func SameEntity[ID comparable](a, b Identifiable[ID]) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	var zero ID
	aID, bID := a.ID(), b.ID()
	if aID == zero || bID == zero {
		return false
	}
	return aID == bID
}

// EntityHash returns a hash consistent with SameEntity. It covers the dynamic
// type name and the identity so entities of different types sharing an
// identity type do not collide. An entity with a zero identity hashes by its
// type name alone. A nil entity hashes to 0.
func EntityHash[ID comparable](e Identifiable[ID]) uint64 {
	if isNil(e) {
		return 0
	}
	var zero ID
	if id := e.ID(); id != zero {
		return xxhash.Sum64String(typeName(e) + DetailSeparator + fmt.Sprint(id))
	}
	return xxhash.Sum64String(typeName(e))
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

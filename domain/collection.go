package domain

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"
)

// Comparer reports whether two KeyCodes should be treated as equal. A nil
// Comparer means value equality on (Key, Code).
type Comparer func(a, b KeyCode) bool

func (c Comparer) equal(a, b KeyCode) bool {
	if c == nil {
		return a == b
	}
	return c(a, b)
}

// ValidationErrorCollection is an immutable, ordered sequence of KeyCodes.
// Every edit returns a new collection backed by a fresh slice; the receiver is
// never modified. The zero value is an empty collection.
type ValidationErrorCollection struct {
	items []KeyCode
}

// NewValidationErrorCollection copies items into a new collection.
func NewValidationErrorCollection(items ...KeyCode) ValidationErrorCollection {
	return ValidationErrorCollection{items: slices.Clone(items)}
}

// Len returns the number of failures.
func (c ValidationErrorCollection) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the collection holds no failures.
func (c ValidationErrorCollection) IsEmpty() bool {
	return len(c.items) == 0
}

// At returns the element at index.
func (c ValidationErrorCollection) At(index int) (KeyCode, error) {
	if index < 0 || index >= len(c.items) {
		return KeyCode{}, indexError("At", index, len(c.items))
	}
	return c.items[index], nil
}

// Items returns a copy of the elements in order.
func (c ValidationErrorCollection) Items() []KeyCode {
	return slices.Clone(c.items)
}

// All iterates over index/element pairs in stored order.
func (c ValidationErrorCollection) All() iter.Seq2[int, KeyCode] {
	return slices.All(c.items)
}

// Values iterates over elements in stored order.
func (c ValidationErrorCollection) Values() iter.Seq[KeyCode] {
	return slices.Values(c.items)
}

// Keys returns the key of every element in order, duplicates included.
func (c ValidationErrorCollection) Keys() []string {
	keys := make([]string, len(c.items))
	for i, kc := range c.items {
		keys[i] = kc.Key
	}
	return keys
}

// ForKey returns the failures reported against key, in order.
func (c ValidationErrorCollection) ForKey(key string) ValidationErrorCollection {
	return c.RemoveAll(func(kc KeyCode) bool { return kc.Key != key })
}

// Contains reports whether item is present under value equality.
func (c ValidationErrorCollection) Contains(item KeyCode) bool {
	return slices.Contains(c.items, item)
}

// Add returns a new collection with value appended.
func (c ValidationErrorCollection) Add(value KeyCode) ValidationErrorCollection {
	return c.AddRange(value)
}

// AddRange returns a new collection with items appended in order.
func (c ValidationErrorCollection) AddRange(items ...KeyCode) ValidationErrorCollection {
	out := make([]KeyCode, 0, len(c.items)+len(items))
	out = append(out, c.items...)
	out = append(out, items...)
	return ValidationErrorCollection{items: out}
}

// Clear returns an empty collection.
func (c ValidationErrorCollection) Clear() ValidationErrorCollection {
	return ValidationErrorCollection{}
}

// Insert returns a new collection with element placed at index. Index may
// equal Len to append.
func (c ValidationErrorCollection) Insert(index int, element KeyCode) (ValidationErrorCollection, error) {
	return c.insertRange("Insert", index, []KeyCode{element})
}

// InsertRange returns a new collection with items placed starting at index.
func (c ValidationErrorCollection) InsertRange(index int, items ...KeyCode) (ValidationErrorCollection, error) {
	return c.insertRange("InsertRange", index, items)
}

func (c ValidationErrorCollection) insertRange(op string, index int, items []KeyCode) (ValidationErrorCollection, error) {
	if index < 0 || index > len(c.items) {
		return c, indexError(op, index, len(c.items))
	}
	return ValidationErrorCollection{items: slices.Insert(slices.Clone(c.items), index, items...)}, nil
}

// Remove returns a new collection without the first element matching value.
// If nothing matches, the result holds the same elements as c.
func (c ValidationErrorCollection) Remove(value KeyCode, cmp Comparer) ValidationErrorCollection {
	out := slices.Clone(c.items)
	if i := indexFunc(out, value, cmp); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	return ValidationErrorCollection{items: out}
}

// RemoveItems returns a new collection with the first match of each of items
// removed, applied in the order given.
func (c ValidationErrorCollection) RemoveItems(items []KeyCode, cmp Comparer) ValidationErrorCollection {
	out := slices.Clone(c.items)
	for _, item := range items {
		if i := indexFunc(out, item, cmp); i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
	}
	return ValidationErrorCollection{items: out}
}

// RemoveAll returns a new collection without the elements for which match
// returns true.
func (c ValidationErrorCollection) RemoveAll(match func(KeyCode) bool) ValidationErrorCollection {
	return ValidationErrorCollection{items: slices.DeleteFunc(slices.Clone(c.items), match)}
}

// RemoveAt returns a new collection without the element at index.
func (c ValidationErrorCollection) RemoveAt(index int) (ValidationErrorCollection, error) {
	if index < 0 || index >= len(c.items) {
		return c, indexError("RemoveAt", index, len(c.items))
	}
	return ValidationErrorCollection{items: slices.Delete(slices.Clone(c.items), index, index+1)}, nil
}

// RemoveRange returns a new collection without count elements starting at
// index.
func (c ValidationErrorCollection) RemoveRange(index, count int) (ValidationErrorCollection, error) {
	if index < 0 || count < 0 || index > len(c.items) || count > len(c.items)-index {
		return c, indexError("RemoveRange", index, len(c.items))
	}
	return ValidationErrorCollection{items: slices.Delete(slices.Clone(c.items), index, index+count)}, nil
}

// Replace returns a new collection with the first element matching oldValue
// replaced by newValue. It fails with ErrItemNotFound if nothing matches.
func (c ValidationErrorCollection) Replace(oldValue, newValue KeyCode, cmp Comparer) (ValidationErrorCollection, error) {
	i := indexFunc(c.items, oldValue, cmp)
	if i < 0 {
		return c, fmtNotFound(oldValue)
	}
	return c.SetItem(i, newValue)
}

// SetItem returns a new collection with the element at index set to value.
func (c ValidationErrorCollection) SetItem(index int, value KeyCode) (ValidationErrorCollection, error) {
	if index < 0 || index >= len(c.items) {
		return c, indexError("SetItem", index, len(c.items))
	}
	out := slices.Clone(c.items)
	out[index] = value
	return ValidationErrorCollection{items: out}, nil
}

// IndexOf returns the index of the first element matching item, or -1.
func (c ValidationErrorCollection) IndexOf(item KeyCode, cmp Comparer) int {
	return indexFunc(c.items, item, cmp)
}

// IndexOfIn searches forward through the window [start, start+count) and
// returns the index of the first match, or -1. An invalid window yields -1.
func (c ValidationErrorCollection) IndexOfIn(item KeyCode, start, count int, cmp Comparer) int {
	if start < 0 || count < 0 || start > len(c.items) || count > len(c.items)-start {
		return -1
	}
	for i := start; i < start+count; i++ {
		if cmp.equal(c.items[i], item) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element matching item, or -1.
func (c ValidationErrorCollection) LastIndexOf(item KeyCode, cmp Comparer) int {
	return c.LastIndexOfIn(item, len(c.items)-1, len(c.items), cmp)
}

// LastIndexOfIn searches backward from start through count elements, covering
// the window [start-count+1, start], and returns the index of the first match
// found, or -1. An invalid window yields -1.
func (c ValidationErrorCollection) LastIndexOfIn(item KeyCode, start, count int, cmp Comparer) int {
	if count == 0 {
		return -1
	}
	if start < 0 || start >= len(c.items) || count < 0 || start-count+1 < 0 {
		return -1
	}
	for i := start; i > start-count; i-- {
		if cmp.equal(c.items[i], item) {
			return i
		}
	}
	return -1
}

// Equal reports whether both collections hold equal elements in the same
// order.
func (c ValidationErrorCollection) Equal(other ValidationErrorCollection) bool {
	return slices.Equal(c.items, other.items)
}

// String joins the elements as "{key}: {code}" separated by ", ".
func (c ValidationErrorCollection) String() string {
	parts := make([]string, len(c.items))
	for i, kc := range c.items {
		parts[i] = kc.String()
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON encodes the collection as a JSON array of KeyCodes.
func (c ValidationErrorCollection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func indexFunc(items []KeyCode, item KeyCode, cmp Comparer) int {
	return slices.IndexFunc(items, func(kc KeyCode) bool { return cmp.equal(kc, item) })
}

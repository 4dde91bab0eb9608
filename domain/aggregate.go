package domain

import "slices"

// Event is a record of something that happened within an aggregate. EventName
// tags the event kind for routing and logging.
type Event interface {
	EventName() string
}

// EventSource exposes the pending events of an aggregate to a dispatcher.
type EventSource interface {
	Events() []Event
	ClearEvents()
}

// AggregateRoot is an entity base that adds a version and a list of pending
// domain events. Embed it in concrete aggregate types.
//
// Events are only ever appended or cleared wholesale. AggregateRoot is not
// safe for concurrent use.
type AggregateRoot[ID comparable, V any] struct {
	Base[ID]
	version V
	events  []Event
}

// Compile-time check that AggregateRoot satisfies EventSource.
var _ EventSource = (*AggregateRoot[int, int])(nil)

// NewAggregateRoot returns an aggregate base with the given identity and
// version and no pending events.
func NewAggregateRoot[ID comparable, V any](id ID, version V) AggregateRoot[ID, V] {
	return AggregateRoot[ID, V]{Base: NewBase(id), version: version}
}

// Version returns the aggregate version.
func (a *AggregateRoot[ID, V]) Version() V {
	return a.version
}

// SetVersion replaces the version. It is meant to be called by the owning
// aggregate's own domain methods.
func (a *AggregateRoot[ID, V]) SetVersion(v V) {
	a.version = v
}

// RecordEvent appends e to the pending events. A nil event is ignored.
func (a *AggregateRoot[ID, V]) RecordEvent(e Event) {
	if isNil(e) {
		return
	}
	a.events = append(a.events, e)
}

// Events returns a snapshot of the pending events in recording order. Later
// calls to RecordEvent or ClearEvents do not affect a snapshot already taken.
func (a *AggregateRoot[ID, V]) Events() []Event {
	if len(a.events) == 0 {
		return []Event{}
	}
	return slices.Clone(a.events)
}

// HasEvents reports whether any events are pending.
func (a *AggregateRoot[ID, V]) HasEvents() bool {
	return len(a.events) > 0
}

// ClearEvents drops every pending event.
func (a *AggregateRoot[ID, V]) ClearEvents() {
	a.events = nil
}

// Package domain provides reusable building blocks for Domain-Driven Design
// models: identity-based entities, aggregate roots that record domain events,
// validating builders, and the immutable collection of keyed validation
// failures those builders report.
//
// A concrete entity embeds [Base] (or [AggregateRoot]) and is constructed by a
// builder that embeds [Builder]:
//
//	b := todo.NewBuilder().WithID(1).WithTitle("Buy groceries")
//	if !b.CanCreate() {
//	    for kc := range b.ValidationErrors().Values() {
//	        fmt.Println(kc.Key, kc.Code)
//	    }
//	}
//	t, err := b.Create()
//
// Entities loaded from a store are rebuilt with the builder marked as existing,
// which skips validation:
//
//	t, err := todo.NewBuilder().MarkAsExisting().CreateFromDTO(stored)
//
// Everything in this package is synchronous and in-memory. Builders and
// aggregates are not safe for concurrent use; give each construction attempt
// its own builder.
package domain

// Package events delivers the domain events pending on an aggregate root to
// the handlers subscribed for them.
//
//	d := events.NewDispatcher()
//	events.Subscribe(d, events.HandlerFunc[project.Renamed](onRenamed))
//
//	p.Rename("new name")
//	if err := d.Dispatch(ctx, p); err != nil {
//	    // events stay pending on p and may be dispatched again
//	}
//
// Delivery is at-least-once from the aggregate's point of view: a source is
// cleared only after every handler for every pending event succeeded.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen11/go-ddd-kit/domain/events"

// AttrEventName labels dispatch metrics and spans with Event.EventName.
var AttrEventName = attribute.Key("ddd.event.name")

// Handler reacts to one kind of domain event.
type Handler[T domain.Event] interface {
	Handle(ctx context.Context, event T) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc[T domain.Event] func(ctx context.Context, event T) error

// Handle calls f(ctx, event).
func (f HandlerFunc[T]) Handle(ctx context.Context, event T) error {
	return f(ctx, event)
}

type subscription struct {
	typ    reflect.Type
	handle func(context.Context, domain.Event) error
}

// matches reports whether e is delivered to this subscription. Concrete types
// match exactly; interface types match every event implementing them.
func (s subscription) matches(e domain.Event) bool {
	et := reflect.TypeOf(e)
	if s.typ.Kind() == reflect.Interface {
		return et.Implements(s.typ)
	}
	return et == s.typ
}

// Dispatcher routes events to subscribed handlers. It is safe for concurrent
// use; Subscribe may be called while dispatches are in flight, and they see
// the subscriptions present when they started.
type Dispatcher struct {
	mu   sync.RWMutex
	subs []subscription

	tracer     trace.Tracer
	dispatched metric.Int64Counter
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTracerProvider sets the provider used for dispatch spans. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Dispatcher) {
		d.tracer = tp.Tracer(instrumentationName)
	}
}

// WithDispatchCounter sets the counter incremented once per delivered event.
func WithDispatchCounter(c metric.Int64Counter) Option {
	return func(d *Dispatcher) {
		d.dispatched = c
	}
}

// NewDispatcher returns a Dispatcher with no subscriptions.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.dispatched == nil {
		// The global meter is a noop until a provider is registered.
		c, err := otel.GetMeterProvider().Meter(instrumentationName).Int64Counter("ddd.events.dispatched")
		if err != nil {
			otel.Handle(err)
		}
		d.dispatched = c
	}
	return d
}

// Subscribe registers h for events of type T. Handlers for the same event run
// in the order they were subscribed.
func Subscribe[T domain.Event](d *Dispatcher, h Handler[T]) {
	sub := subscription{
		typ: reflect.TypeFor[T](),
		handle: func(ctx context.Context, e domain.Event) error {
			return h.Handle(ctx, e.(T))
		},
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, sub)
}

// Dispatch delivers every event pending on source, in recording order, to the
// matching handlers. A handler error does not stop delivery of the remaining
// events; all errors are joined and returned, and source keeps its events.
// On success source is cleared.
//
// Handlers must not record new events on source: a successful dispatch clears
// them unseen.
func (d *Dispatcher) Dispatch(ctx context.Context, source domain.EventSource) error {
	pending := source.Events()
	if len(pending) == 0 {
		return nil
	}

	ctx, span := d.tracer.Start(ctx, "events.Dispatch",
		trace.WithAttributes(attribute.Int("ddd.events.pending", len(pending))),
	)
	defer span.End()

	logger := logging.FromContext(ctx)

	d.mu.RLock()
	subs := d.subs
	d.mu.RUnlock()

	var errs []error
	for _, e := range pending {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		name := e.EventName()
		delivered := 0
		for _, s := range subs {
			if !s.matches(e) {
				continue
			}
			delivered++
			if err := s.handle(ctx, e); err != nil {
				logger.ErrorContext(ctx, "event handler failed",
					slog.String("operation", "Dispatch"),
					slog.String("event", name),
					slog.Any("error", err),
				)
				errs = append(errs, fmt.Errorf("handling %s: %w", name, err))
			}
		}

		d.dispatched.Add(ctx, 1, metric.WithAttributes(AttrEventName.String(name)))
		logger.DebugContext(ctx, "event dispatched",
			slog.String("event", name),
			slog.Int("handlers", delivered),
		)
	}

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "event dispatch failed")
		return err
	}

	source.ClearEvents()
	return nil
}

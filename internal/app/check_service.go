// Package app holds the checker's use case: build every project document
// with its own builder, render rejections in the configured locale, and
// dispatch the events of the projects that were built.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/domain/events"
	"github.com/jsamuelsen11/go-ddd-kit/internal/app/batch"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/logging"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ddd-kit/internal/ports"
	"github.com/jsamuelsen11/go-ddd-kit/internal/sample/project"
)

const (
	defaultWorkers = 4
	defaultLocale  = "en"
	projectEntity  = "Project"
)

// CheckService validates project documents from a DocumentSource.
type CheckService struct {
	source     ports.DocumentSource
	renderer   ports.MessageRenderer
	dispatcher *events.Dispatcher
	metrics    *telemetry.Metrics
	logger     *slog.Logger
	workers    int
	locale     string
}

// CheckOption configures a CheckService.
type CheckOption func(*CheckService)

// WithWorkers bounds how many documents are built concurrently.
func WithWorkers(n int) CheckOption {
	return func(s *CheckService) { s.workers = n }
}

// WithLocale selects the locale failures are rendered in.
func WithLocale(locale string) CheckOption {
	return func(s *CheckService) { s.locale = locale }
}

// WithMetrics records build and validation metrics on m.
func WithMetrics(m *telemetry.Metrics) CheckOption {
	return func(s *CheckService) { s.metrics = m }
}

// NewCheckService creates a CheckService. A nil logger discards output; a nil
// dispatcher delivers events to nobody.
func NewCheckService(
	source ports.DocumentSource,
	renderer ports.MessageRenderer,
	dispatcher *events.Dispatcher,
	logger *slog.Logger,
	opts ...CheckOption,
) *CheckService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dispatcher == nil {
		dispatcher = events.NewDispatcher()
	}

	s := &CheckService{
		source:     source,
		renderer:   renderer,
		dispatcher: dispatcher,
		logger:     logger,
		workers:    defaultWorkers,
		locale:     defaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = noopMetrics()
	}
	return s
}

// Check builds every document and returns the per-document outcomes. The
// error return is reserved for failures of the source itself; rejected or
// undecodable documents are reported in the Report.
func (s *CheckService) Check(ctx context.Context) (*Report, error) {
	start := time.Now()
	ctx = logging.WithLogger(ctx, s.logger)

	docs, err := s.source.Documents(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list documents",
			slog.String("operation", "Check"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	s.logger.InfoContext(ctx, "checking documents",
		slog.Int("documents", len(docs)),
		slog.Int("workers", s.workers),
	)

	results := batch.Run(ctx, s.workers, docs, s.checkDocument)

	report := &Report{Documents: make([]DocumentResult, 0, len(docs))}
	for i, r := range results {
		res := r.Value
		if r.Err != nil {
			res = failed(docs[i].Name, r.Err)
		}
		report.add(res)
	}

	s.metrics.CheckDuration.Record(ctx, time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "check finished",
		slog.Int("valid", report.Valid),
		slog.Int("invalid", report.Invalid),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *CheckService) checkDocument(ctx context.Context, doc ports.Document) (DocumentResult, error) {
	ctx = logging.With(ctx, slog.String("document", doc.Name))
	logger := logging.FromContext(ctx)

	if doc.Err != nil {
		logger.ErrorContext(ctx, "document unreadable",
			slog.String("operation", "checkDocument"),
			slog.Any("error", doc.Err),
		)
		s.recordBuild(ctx, telemetry.ResultError)
		return failed(doc.Name, doc.Err), nil
	}

	b := project.NewBuilder()
	if doc.Existing {
		b.MarkAsExisting()
	}

	p, err := b.CreateFromDTO(doc.Project)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.WarnContext(ctx, "document rejected", logging.ValidationErrors(verr.Errors))
		s.recordBuild(ctx, telemetry.ResultRejected)
		s.recordValidationErrors(ctx, verr.Errors)
		return DocumentResult{
			Document: doc.Name,
			Outcome:  OutcomeInvalid,
			Errors:   s.renderer.RenderAll(s.locale, verr.Errors),
		}, nil
	case err != nil:
		logger.ErrorContext(ctx, "failed to build project",
			slog.String("operation", "checkDocument"),
			slog.Any("error", err),
		)
		s.recordBuild(ctx, telemetry.ResultError)
		return failed(doc.Name, err), nil
	}

	s.recordBuild(ctx, telemetry.ResultCreated)

	names := make([]string, 0, len(p.Events()))
	for _, e := range p.Events() {
		names = append(names, e.EventName())
	}
	if err := s.dispatcher.Dispatch(ctx, p); err != nil {
		return failed(doc.Name, fmt.Errorf("dispatching events: %w", err)), nil
	}

	logger.DebugContext(ctx, "document valid",
		logging.Entity(projectEntity, p.ID()),
		slog.Int("events", len(names)),
	)
	return DocumentResult{
		Document:  doc.Name,
		Outcome:   OutcomeValid,
		ProjectID: p.ID().String(),
		Version:   p.Version(),
		Todos:     len(p.Todos()),
		Progress:  p.Progress(),
		Events:    names,
	}, nil
}

func (s *CheckService) recordBuild(ctx context.Context, result string) {
	s.metrics.BuildTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntity.String(projectEntity),
		telemetry.AttrResult.String(result),
	))
}

func (s *CheckService) recordValidationErrors(ctx context.Context, errs domain.ValidationErrorCollection) {
	for kc := range errs.Values() {
		s.metrics.ValidationErrors.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrEntity.String(projectEntity),
			telemetry.AttrCode.String(kc.BaseCode()),
		))
	}
}

func failed(name string, err error) DocumentResult {
	return DocumentResult{
		Document: name,
		Outcome:  OutcomeFailed,
		Failure:  err.Error(),
		Err:      err,
	}
}

func noopMetrics() *telemetry.Metrics {
	// The noop provider never fails to create instruments.
	m, _ := telemetry.NewMetrics(noop.NewMeterProvider())
	return m
}

// Command dddcheck validates project documents with the domain builders and
// reports every rejected field in the configured locale.
//
//	APP_PROFILE=local dddcheck [-json] [-config file.yaml] path...
//
// Paths are YAML files or directories of them. The exit status is 0 when all
// documents are valid, 1 when any is invalid or unreadable, and 2 when the
// run itself fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/domain/events"
	"github.com/jsamuelsen11/go-ddd-kit/domain/messages"
	"github.com/jsamuelsen11/go-ddd-kit/internal/adapters/yamlsource"
	"github.com/jsamuelsen11/go-ddd-kit/internal/app"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/config"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/logging"
	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ddd-kit/internal/ports"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2

	otelShutdownTimeout = 5 * time.Second
)

var errInvalidDocuments = errors.New("invalid documents found")

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, errInvalidDocuments):
		os.Exit(exitInvalid)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dddcheck", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "write the report as JSON")
	overlay := fs.String("config", "", "extra YAML file layered over the profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("at least one document path is required")
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile, config.WithOverlay(*overlay))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)
	registerDependencies(injector, cfg, logger, fs.Args())

	svc, err := do.Invoke[*app.CheckService](injector)
	if err != nil {
		return fmt.Errorf("resolving check service: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Check.Timeout)
	defer cancel()

	report, err := svc.Check(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		err = writeJSON(stdout, report)
	} else {
		err = writeText(stdout, report)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if !report.OK() {
		return errInvalidDocuments
	}
	return nil
}

// otelProviders bundles the provider lifecycle. The providers are nil when
// telemetry is disabled; metrics then record on the global noop provider.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		metrics, err := telemetry.NewMetrics(otel.GetMeterProvider())
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		return &otelProviders{metrics: metrics}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, paths []string) {
	do.Provide(injector, func(_ do.Injector) (ports.DocumentSource, error) {
		return yamlsource.New(paths...), nil
	})

	do.Provide(injector, func(_ do.Injector) (*messages.Catalog, error) {
		fallback, err := language.Parse(cfg.Messages.Fallback)
		if err != nil {
			return nil, fmt.Errorf("parsing fallback locale: %w", err)
		}
		catalog := messages.New(fallback)
		for _, path := range cfg.Messages.Catalogs {
			if err := catalog.LoadFile(path); err != nil {
				return nil, err
			}
		}
		return catalog, nil
	})

	do.Provide(injector, func(i do.Injector) (*events.Dispatcher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		d := events.NewDispatcher(events.WithDispatchCounter(metrics.EventsDispatched))
		events.Subscribe(d, events.HandlerFunc[domain.Event](logEvent))
		return d, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.CheckService, error) {
		source := do.MustInvoke[ports.DocumentSource](i)
		catalog, err := do.Invoke[*messages.Catalog](i)
		if err != nil {
			return nil, err
		}
		return app.NewCheckService(source, catalog, do.MustInvoke[*events.Dispatcher](i), logger,
			app.WithWorkers(cfg.Check.Workers),
			app.WithLocale(cfg.Messages.Locale),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})
}

func logEvent(ctx context.Context, e domain.Event) error {
	logging.FromContext(ctx).InfoContext(ctx, "domain event", slog.String("event", e.EventName()))
	return nil
}

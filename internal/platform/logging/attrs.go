package logging

import (
	"log/slog"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

// ValidationErrors groups a failure collection under "validation" with its
// count and the failures rendered as "key: code" pairs.
func ValidationErrors(errs domain.ValidationErrorCollection) slog.Attr {
	return slog.Group("validation",
		slog.Int("count", errs.Len()),
		slog.String("errors", errs.String()),
	)
}

// Entity identifies an entity in log output.
func Entity(name string, id any) slog.Attr {
	return slog.Group("entity",
		slog.String("type", name),
		slog.Any("id", id),
	)
}

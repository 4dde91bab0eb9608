package ports

import (
	"context"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
	"github.com/jsamuelsen11/go-ddd-kit/domain/messages"
	"github.com/jsamuelsen11/go-ddd-kit/internal/sample/project"
)

// Document is one project document to check.
type Document struct {
	// Name identifies the document in reports, typically its path.
	Name string
	// Existing marks a stored project that is rebuilt without validation.
	Existing bool
	Project  project.DTO
	// Err is set when the document could not be decoded; Project is then
	// meaningless.
	Err error
}

// DocumentSource lists the documents of a checking run. Implemented by the
// yamlsource adapter.
type DocumentSource interface {
	// Documents returns every document in a stable order. A document that
	// fails to decode is returned with Err set rather than failing the call;
	// the error return is reserved for the source itself being unusable.
	Documents(ctx context.Context) ([]Document, error)
}

// MessageRenderer turns validation failures into localized messages.
// Implemented by *messages.Catalog.
type MessageRenderer interface {
	RenderAll(locale string, errs domain.ValidationErrorCollection) []messages.FieldMessage
}

var _ MessageRenderer = (*messages.Catalog)(nil)

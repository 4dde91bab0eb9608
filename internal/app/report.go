package app

import (
	"github.com/jsamuelsen11/go-ddd-kit/domain/messages"
)

// Outcome classifies a checked document.
type Outcome string

const (
	// OutcomeValid means the project was built and its events dispatched.
	OutcomeValid Outcome = "valid"
	// OutcomeInvalid means the builder rejected the document.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeFailed means the document could not be checked at all.
	OutcomeFailed Outcome = "failed"
)

// DocumentResult is the outcome of checking one document.
type DocumentResult struct {
	Document  string                  `json:"document"`
	Outcome   Outcome                 `json:"outcome"`
	ProjectID string                  `json:"project_id,omitempty"`
	Version   int                     `json:"version,omitempty"`
	Todos     int                     `json:"todos,omitempty"`
	Progress  int                     `json:"progress,omitempty"`
	Events    []string                `json:"events,omitempty"`
	Errors    []messages.FieldMessage `json:"errors,omitempty"`
	Failure   string                  `json:"failure,omitempty"`

	Err error `json:"-"`
}

// Report summarizes a checking run. Documents keep the source order.
type Report struct {
	Documents []DocumentResult `json:"documents"`
	Valid     int              `json:"valid"`
	Invalid   int              `json:"invalid"`
	Failed    int              `json:"failed"`
}

// OK reports whether every document was valid.
func (r *Report) OK() bool {
	return r.Invalid == 0 && r.Failed == 0
}

func (r *Report) add(res DocumentResult) {
	switch res.Outcome {
	case OutcomeValid:
		r.Valid++
	case OutcomeInvalid:
		r.Invalid++
	default:
		r.Failed++
	}
	r.Documents = append(r.Documents, res)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/go-ddd-kit/internal/app"
)

func writeJSON(w io.Writer, report *app.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeText(w io.Writer, report *app.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, doc := range report.Documents {
		switch doc.Outcome {
		case app.OutcomeValid:
			fmt.Fprintf(tw, "%s\tvalid\tproject %s v%d, %d todos, %d%% done\n",
				doc.Document, doc.ProjectID, doc.Version, doc.Todos, doc.Progress)
		case app.OutcomeInvalid:
			fmt.Fprintf(tw, "%s\tinvalid\t%d errors\n", doc.Document, len(doc.Errors))
			for _, m := range doc.Errors {
				fmt.Fprintf(tw, "\t  %s\t%s\n", m.Key, m.Message)
			}
		default:
			fmt.Fprintf(tw, "%s\tfailed\t%s\n", doc.Document, doc.Failure)
		}
	}
	fmt.Fprintf(tw, "\n%d valid, %d invalid, %d failed\n", report.Valid, report.Invalid, report.Failed)

	return tw.Flush()
}

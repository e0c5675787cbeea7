// Package output provides proposal output formatting.
// Formatters render an already-computed proposal; no pricing logic
// happens here.
package output

import (
	"io"

	"talent-quote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the proposal
	Render(w io.Writer, proposal *types.Proposal) error
}

// For returns the formatter for a format, defaulting to CLI
func For(format Format, showMilestones bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{ShowMilestones: showMilestones}
	}
}

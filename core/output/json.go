// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"talent-quote/core/types"
)

// JSONFormatter renders a proposal as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the proposal as JSON
func (f *JSONFormatter) Render(w io.Writer, proposal *types.Proposal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(proposal)
}

// Package output - CLI table formatter
package output

import (
	"fmt"
	"io"

	"talent-quote/core/types"
)

// CLIFormatter renders a proposal as a boxed table
type CLIFormatter struct {
	// ShowMilestones includes the billing schedule per modality
	ShowMilestones bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the proposal as a human-readable table
func (f *CLIFormatter) Render(w io.Writer, proposal *types.Proposal) error {
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("┌─────────────────────────────────────────────────────────────────────────┐")
	line("│                           PROPOSAL SUMMARY                              │")
	line("├─────────────────────────────────────────────────────────────────────────┤")

	for _, result := range proposal.Modalities {
		label := fmt.Sprintf("%s × %d (%s)", result.Type.Label(), result.Count, result.BusinessUnitID)
		line("│ %-50s %20s │", truncate(label, 50),
			fmt.Sprintf("%s %s", result.Cost.StringFixed(2), proposal.Currency))

		if f.ShowMilestones {
			for _, milestone := range result.Milestones {
				line("│   └─ %-46s %20s │", truncate(milestone.Label, 46),
					milestone.Amount.StringFixed(2))
			}
		}
	}

	for _, addon := range proposal.Addons {
		line("│ %-50s %20s │", truncate("Addon: "+addon.Name, 50),
			fmt.Sprintf("%s %s", addon.Price.StringFixed(2), proposal.Currency))
	}

	for _, assessment := range proposal.Assessments {
		label := fmt.Sprintf("Assessment: %s × %d users", assessment.Name, assessment.UserCount)
		line("│ %-50s %20s │", truncate(label, 50),
			fmt.Sprintf("%s %s", assessment.Cost.StringFixed(2), proposal.Currency))
	}

	line("├─────────────────────────────────────────────────────────────────────────┤")
	line("│ %-50s %20s │", "TOTAL",
		fmt.Sprintf("%s %s", proposal.TotalAmount.StringFixed(2), proposal.Currency))
	line("└─────────────────────────────────────────────────────────────────────────┘")

	for _, warning := range proposal.Warnings {
		line("Warning: %s", warning)
	}

	return nil
}

// truncate counts runes so multibyte names are never split mid-rune
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// Package compare - Side-by-side modality comparison
// Pure projection over an already-computed proposal; nothing is
// recomputed here.
package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"talent-quote/core/types"
)

// ChartPoint is a (label, cost) pair suitable for chart rendering
type ChartPoint struct {
	// Label identifies the modality (and unit, when several units
	// contribute the same modality)
	Label string `json:"label"`

	// Cost is the modality cost
	Cost decimal.Decimal `json:"cost"`
}

// Comparison is the side-by-side view over a modality subset
type Comparison struct {
	// Modalities are the matching results in requested-modality order
	Modalities []types.ModalityResult `json:"modalities"`

	// Chart is the flattened (label, cost) series
	Chart []ChartPoint `json:"chart"`
}

// Build filters a proposal down to the requested modalities.
// Requested modalities absent from the proposal are skipped; an empty
// result is valid, not an error.
func Build(proposal *types.Proposal, requested []types.Modality) Comparison {
	cmp := Comparison{
		Modalities: []types.ModalityResult{},
		Chart:      []ChartPoint{},
	}

	for _, modality := range requested {
		for _, result := range proposal.Modalities {
			if result.Type != modality {
				continue
			}
			cmp.Modalities = append(cmp.Modalities, result)
			cmp.Chart = append(cmp.Chart, ChartPoint{
				Label: chartLabel(result),
				Cost:  result.Cost,
			})
		}
	}

	return cmp
}

func chartLabel(result types.ModalityResult) string {
	return fmt.Sprintf("%s (%s)", result.Type.Label(), result.BusinessUnitID)
}

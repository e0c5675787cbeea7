// Package quote - Proposal consistency checks
package quote

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// tolerance is one currency minor unit
var tolerance = decimal.New(1, -2)

// Verify checks a proposal's internal consistency: every modality's
// milestones sum to its cost, and the total equals the sum of all
// parts. Delivery collaborators call this before handing a proposal
// to an external channel.
func Verify(proposal *types.Proposal) error {
	for _, result := range proposal.Modalities {
		if len(result.Milestones) == 0 {
			if !result.Cost.IsZero() {
				return errors.Newf(errors.TypeInternal,
					"modality %s in unit %s has cost %s but no milestones",
					result.Type, result.BusinessUnitID, result.Cost)
			}
			continue
		}
		diff := result.MilestoneTotal().Sub(result.Cost).Abs()
		if diff.GreaterThan(tolerance) {
			return errors.Newf(errors.TypeInternal,
				"modality %s in unit %s: milestones sum to %s, cost is %s",
				result.Type, result.BusinessUnitID, result.MilestoneTotal(), result.Cost)
		}
	}

	expected := proposal.ModalityTotal().
		Add(proposal.AddonTotal()).
		Add(proposal.AssessmentTotal())
	if !proposal.TotalAmount.Equal(expected) {
		return errors.Newf(errors.TypeInternal,
			"proposal total %s does not match component sum %s",
			proposal.TotalAmount, expected)
	}

	return nil
}

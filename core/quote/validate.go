// Package quote - Selection validation
package quote

import (
	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// validate checks the whole selection against the catalog before any
// cost computation. Unknown identifiers surface as INVALID_SELECTION
// because the caller must correct the selection, not retry.
func (e *Engine) validate(sel types.Selection) error {
	if !sel.Retainer.IsValid() {
		return errors.InvalidSelectionf("unknown retainer scheme: %q", sel.Retainer)
	}

	for _, unitSel := range sel.Units {
		if unitSel.AI < 0 || unitSel.Hybrid < 0 || unitSel.Human < 0 {
			return errors.InvalidSelectionf("business unit %s: negative modality count", unitSel.BusinessUnitID)
		}
		if unitSel.BaseCompensation.IsNegative() {
			return errors.InvalidSelectionf("business unit %s: negative base compensation", unitSel.BusinessUnitID)
		}

		unit, err := e.catalog.BusinessUnit(unitSel.BusinessUnitID)
		if err != nil {
			return errors.InvalidSelectionf("unknown business unit: %s", unitSel.BusinessUnitID)
		}

		// Flat-priced units carry a fixed AI/Hybrid pair only.
		if unit.Model == types.PricingFlat && unitSel.Human > 0 {
			return errors.InvalidSelectionf("business unit %s does not offer the %s modality", unit.ID, types.ModalityHuman)
		}
	}

	for _, id := range sel.AddonIDs {
		if _, err := e.catalog.Addon(id); err != nil {
			return errors.InvalidSelectionf("unknown addon: %s", id)
		}
	}

	for _, assessSel := range sel.Assessments {
		if assessSel.UserCount < 1 {
			return errors.InvalidSelectionf("assessment %s: user count must be at least 1", assessSel.AssessmentID)
		}
		if _, err := e.catalog.Assessment(assessSel.AssessmentID); err != nil {
			return errors.InvalidSelectionf("unknown assessment: %s", assessSel.AssessmentID)
		}
	}

	return nil
}

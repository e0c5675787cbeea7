// Package api - Request mapping
package api

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/types"
)

// toSelection maps the wire request to the engine's selection snapshot
func toSelection(req *QuoteRequest) types.Selection {
	sel := types.Selection{
		Units:    make([]types.UnitSelection, 0, len(req.Units)),
		AddonIDs: req.AddonIDs,
		Retainer: types.RetainerScheme(req.RetainerScheme),
	}

	for _, unit := range req.Units {
		sel.Units = append(sel.Units, types.UnitSelection{
			BusinessUnitID:   unit.BusinessUnitID,
			AI:               unit.AI,
			Hybrid:           unit.Hybrid,
			Human:            unit.Human,
			BaseCompensation: decimal.NewFromFloat(unit.BaseCompensation),
		})
	}

	for _, assessment := range req.Assessments {
		sel.Assessments = append(sel.Assessments, types.AssessmentSelection{
			AssessmentID: assessment.AssessmentID,
			UserCount:    assessment.UserCount,
		})
	}

	return sel
}

// toModalities maps modality tags to domain modalities
func toModalities(tags []string) []types.Modality {
	modalities := make([]types.Modality, 0, len(tags))
	for _, tag := range tags {
		modalities = append(modalities, types.Modality(tag))
	}
	return modalities
}

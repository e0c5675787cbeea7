// Package types - Selection snapshot types
package types

import "github.com/shopspring/decimal"

// RetainerScheme governs how a percentage-priced modality's cost is
// split into upfront milestones before the success fee.
type RetainerScheme string

const (
	// RetainerNone means no scheme was chosen
	RetainerNone RetainerScheme = ""

	// RetainerSingle is one upfront retainer payment
	RetainerSingle RetainerScheme = "single"

	// RetainerDouble is two equal upfront retainer payments
	RetainerDouble RetainerScheme = "double"
)

// IsValid reports whether the scheme is a known value (including none)
func (r RetainerScheme) IsValid() bool {
	switch r {
	case RetainerNone, RetainerSingle, RetainerDouble:
		return true
	}
	return false
}

// UnitSelection is the per-business-unit part of a selection snapshot
type UnitSelection struct {
	// BusinessUnitID references a catalog business unit
	BusinessUnitID string `json:"business_unit_id"`

	// AI is the number of AI-modality positions
	AI int `json:"ai"`

	// Hybrid is the number of Hybrid-modality positions
	Hybrid int `json:"hybrid"`

	// Human is the number of Human-modality positions
	Human int `json:"human"`

	// BaseCompensation is the monthly compensation figure used to
	// derive percentage-based modality pricing.
	BaseCompensation decimal.Decimal `json:"base_compensation"`
}

// Count returns the position count for a modality
func (u UnitSelection) Count(m Modality) int {
	switch m {
	case ModalityAI:
		return u.AI
	case ModalityHybrid:
		return u.Hybrid
	case ModalityHuman:
		return u.Human
	default:
		return 0
	}
}

// TotalPositions is the volume-discount boundary: the sum of all
// modality counts within this unit selection.
func (u UnitSelection) TotalPositions() int {
	return u.AI + u.Hybrid + u.Human
}

// AssessmentSelection selects an assessment for a number of users
type AssessmentSelection struct {
	// AssessmentID references a catalog assessment
	AssessmentID string `json:"assessment_id"`

	// UserCount is the number of users, must be >= 1
	UserCount int `json:"user_count"`
}

// Selection is the immutable input snapshot to a quote computation.
// The engine never mutates it; a fresh snapshot is created per
// quoting session by the caller.
type Selection struct {
	// Units are the per-business-unit selections
	Units []UnitSelection `json:"units"`

	// AddonIDs are the selected addon identifiers
	AddonIDs []string `json:"addon_ids,omitempty"`

	// Assessments are the selected assessments with user counts
	Assessments []AssessmentSelection `json:"assessments,omitempty"`

	// Retainer is the chosen retainer scheme, RetainerNone if unset
	Retainer RetainerScheme `json:"retainer_scheme,omitempty"`
}

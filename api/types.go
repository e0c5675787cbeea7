// Package api - API types for quote computation
// These types define the contract for the /quote and /compare
// endpoints. The API is stateless, idempotent, and deterministic.
package api

import (
	"talent-quote/core/compare"
	"talent-quote/core/types"
)

// QuoteRequest is the input to POST /quote
type QuoteRequest struct {
	// Units are the per-business-unit selections
	Units []UnitSelectionInput `json:"units" validate:"dive"`

	// AddonIDs are the selected addon identifiers
	AddonIDs []string `json:"addon_ids,omitempty"`

	// Assessments are the selected assessments
	Assessments []AssessmentSelectionInput `json:"assessments,omitempty" validate:"dive"`

	// RetainerScheme is "single", "double", or empty
	RetainerScheme string `json:"retainer_scheme,omitempty" validate:"omitempty,oneof=single double"`
}

// UnitSelectionInput is the wire form of a unit selection
type UnitSelectionInput struct {
	BusinessUnitID   string  `json:"business_unit_id" validate:"required"`
	AI               int     `json:"ai" validate:"gte=0"`
	Hybrid           int     `json:"hybrid" validate:"gte=0"`
	Human            int     `json:"human" validate:"gte=0"`
	BaseCompensation float64 `json:"base_compensation" validate:"gte=0"`
}

// AssessmentSelectionInput is the wire form of an assessment selection
type AssessmentSelectionInput struct {
	AssessmentID string `json:"assessment_id" validate:"required"`
	UserCount    int    `json:"user_count" validate:"gte=1"`
}

// CompareRequest is the input to POST /compare
type CompareRequest struct {
	QuoteRequest

	// Modalities is the subset to compare
	Modalities []string `json:"modalities" validate:"required,min=1,dive,oneof=ai hybrid human"`
}

// QuoteResponse is the output of POST /quote
type QuoteResponse struct {
	// RequestID identifies this computation
	RequestID string `json:"request_id"`

	// Proposal is the computed proposal
	Proposal *types.Proposal `json:"proposal"`

	// Metadata contains execution context
	Metadata ResponseMetadata `json:"metadata"`
}

// CompareResponse is the output of POST /compare
type CompareResponse struct {
	// RequestID identifies this computation
	RequestID string `json:"request_id"`

	// Comparison is the projected side-by-side view
	Comparison compare.Comparison `json:"comparison"`

	// Metadata contains execution context
	Metadata ResponseMetadata `json:"metadata"`
}

// CatalogResponse is the output of GET /catalog
type CatalogResponse struct {
	BusinessUnits []types.BusinessUnit `json:"business_units"`
	Addons        []types.Addon        `json:"addons"`
	Assessments   []types.Assessment   `json:"assessments"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	// EngineVersion is the engine version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the computation duration
	DurationMs int64 `json:"duration_ms"`
}

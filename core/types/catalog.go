// Package types - Catalog types
// Catalog entries are immutable for the duration of a quoting session.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Modality is the delivery mode of a recruiting service
type Modality string

const (
	// ModalityAI is a fully AI-driven search
	ModalityAI Modality = "ai"

	// ModalityHybrid combines AI sourcing with recruiter review
	ModalityHybrid Modality = "hybrid"

	// ModalityHuman is a recruiter-led executive search
	ModalityHuman Modality = "human"
)

// Modalities lists all modalities in canonical order.
// Proposal output follows this order for determinism.
var Modalities = []Modality{ModalityAI, ModalityHybrid, ModalityHuman}

// String returns the string representation
func (m Modality) String() string {
	return string(m)
}

// Label returns a human-readable label
func (m Modality) Label() string {
	switch m {
	case ModalityAI:
		return "AI Search"
	case ModalityHybrid:
		return "Hybrid Search"
	case ModalityHuman:
		return "Executive Search"
	default:
		return string(m)
	}
}

// IsValid reports whether the modality is a known value
func (m Modality) IsValid() bool {
	switch m {
	case ModalityAI, ModalityHybrid, ModalityHuman:
		return true
	}
	return false
}

// PricingModel tags how a business unit prices its modalities
type PricingModel string

const (
	// PricingPercentage prices Hybrid/Human as a fraction of
	// annualized compensation; AI is a flat search fee.
	PricingPercentage PricingModel = "percentage"

	// PricingFlat prices AI and Hybrid as fixed per-search fees.
	PricingFlat PricingModel = "flat"
)

// Plan is a named pricing plan within a business unit
type Plan struct {
	// Name is the plan name
	Name string `json:"name"`

	// Type is the plan type (e.g., "retained", "contingent")
	Type string `json:"type"`

	// BasePrice is the plan's base price
	BasePrice decimal.Decimal `json:"base_price"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// BusinessUnit is a distinct service line with its own pricing model
type BusinessUnit struct {
	// ID uniquely identifies the business unit
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Model tags the pricing model; the rate resolver dispatches on it
	Model PricingModel `json:"model"`

	// AIFee is the flat per-position fee for the AI modality
	AIFee decimal.Decimal `json:"ai_fee"`

	// HybridFee is the flat per-position Hybrid fee.
	// Only meaningful for flat-model units.
	HybridFee decimal.Decimal `json:"hybrid_fee,omitempty"`

	// Plans are the unit's published pricing plans
	Plans []Plan `json:"plans,omitempty"`
}

// Addon is a flat-priced optional extra
type Addon struct {
	// ID uniquely identifies the addon
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Price is the flat addon price
	Price decimal.Decimal `json:"price"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// DiscountTier is a per-user price reduction unlocked at a minimum user count
type DiscountTier struct {
	// MinUsers is the minimum user count for this tier
	MinUsers int `json:"min_users"`

	// Discount is the discount fraction (0.1 = 10% off)
	Discount decimal.Decimal `json:"discount"`
}

// Assessment is a per-user priced evaluation product with tiered discounts
type Assessment struct {
	// ID uniquely identifies the assessment
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// BasePrice is the per-user base price
	BasePrice decimal.Decimal `json:"base_price"`

	// Tiers are the discount tiers, ordered by ascending MinUsers
	Tiers []DiscountTier `json:"tiers,omitempty"`
}

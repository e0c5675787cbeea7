// Package types - Proposal output types
package types

import "github.com/shopspring/decimal"

// BillingMilestone is one scheduled payment component of a modality's cost
type BillingMilestone struct {
	// Label is a short milestone label
	Label string `json:"label"`

	// Amount is the milestone amount
	Amount decimal.Decimal `json:"amount"`

	// Detail provides additional context (e.g., due condition)
	Detail string `json:"detail,omitempty"`
}

// ModalityResult is the priced result for one modality within one business unit
type ModalityResult struct {
	// BusinessUnitID is the source business unit
	BusinessUnitID string `json:"business_unit_id"`

	// Type is the modality
	Type Modality `json:"type"`

	// Count is the number of positions
	Count int `json:"count"`

	// UnitPrice is the resolved price for one position
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Cost is the total modality cost (UnitPrice * Count)
	Cost decimal.Decimal `json:"cost"`

	// Milestones is the ordered billing schedule; amounts sum to Cost
	Milestones []BillingMilestone `json:"billing_milestones"`
}

// MilestoneTotal returns the sum of milestone amounts
func (r ModalityResult) MilestoneTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.Milestones {
		total = total.Add(m.Amount)
	}
	return total
}

// AddonCost is one selected addon folded into the proposal total
type AddonCost struct {
	// AddonID references the catalog addon
	AddonID string `json:"addon_id"`

	// Name is the addon display name
	Name string `json:"name"`

	// Price is the flat addon price
	Price decimal.Decimal `json:"price"`
}

// AssessmentCost is one selected assessment folded into the proposal total
type AssessmentCost struct {
	// AssessmentID references the catalog assessment
	AssessmentID string `json:"assessment_id"`

	// Name is the assessment display name
	Name string `json:"name"`

	// UserCount is the number of users priced
	UserCount int `json:"user_count"`

	// Discount is the applied discount fraction
	Discount decimal.Decimal `json:"discount"`

	// Cost is base price * users * (1 - discount)
	Cost decimal.Decimal `json:"cost"`
}

// Proposal is the fully computed, itemized quote.
// It is always rebuilt from scratch, never partially updated.
type Proposal struct {
	// TotalAmount is the sum of modality, addon, and assessment costs
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Currency is the proposal currency
	Currency Currency `json:"currency"`

	// Modalities are the priced modality results in stable order
	Modalities []ModalityResult `json:"modalities"`

	// Addons are the selected addon costs
	Addons []AddonCost `json:"addons,omitempty"`

	// Assessments are the selected assessment costs
	Assessments []AssessmentCost `json:"assessments,omitempty"`

	// Warnings are input-quality notes that did not block computation
	Warnings []string `json:"warnings,omitempty"`
}

// ModalityTotal returns the sum of all modality costs
func (p *Proposal) ModalityTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.Modalities {
		total = total.Add(m.Cost)
	}
	return total
}

// AddonTotal returns the sum of all addon prices
func (p *Proposal) AddonTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Addons {
		total = total.Add(a.Price)
	}
	return total
}

// AssessmentTotal returns the sum of all assessment costs
func (p *Proposal) AssessmentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Assessments {
		total = total.Add(a.Cost)
	}
	return total
}

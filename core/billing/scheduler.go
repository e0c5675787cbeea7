// Package billing - Billing milestone scheduling
// Expands a modality's total cost into an ordered milestone list.
// Postcondition: milestone amounts always sum exactly to the cost;
// the rounding remainder is carried by the final milestone.
package billing

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// minorUnitPlaces is the currency minor unit precision
const minorUnitPlaces = 2

var two = decimal.NewFromInt(2)

// Scheduler expands costs into billing milestones
type Scheduler struct {
	retainerFraction decimal.Decimal
}

// NewScheduler creates a scheduler with the upfront retainer fraction
// applied to percentage-priced Hybrid/Human costs.
func NewScheduler(retainerFraction decimal.Decimal) *Scheduler {
	return &Scheduler{retainerFraction: retainerFraction}
}

// Schedule returns the ordered billing milestones for a modality cost.
// AI positions and flat-model fees bill as a single upfront payment.
// Percentage-priced Hybrid/Human costs require a retainer scheme.
func (s *Scheduler) Schedule(
	model types.PricingModel,
	modality types.Modality,
	cost decimal.Decimal,
	scheme types.RetainerScheme,
) ([]types.BillingMilestone, error) {
	// Zero cost produces no milestones; conservation holds trivially.
	if cost.IsZero() {
		return nil, nil
	}

	if modality == types.ModalityAI || model == types.PricingFlat {
		return []types.BillingMilestone{
			{
				Label:  "Upfront payment",
				Amount: cost,
				Detail: "Due on engagement",
			},
		}, nil
	}

	switch scheme {
	case types.RetainerSingle:
		retainer := cost.Mul(s.retainerFraction).Round(minorUnitPlaces)
		return []types.BillingMilestone{
			{
				Label:  "Retainer payment",
				Amount: retainer,
				Detail: "Due on engagement",
			},
			{
				Label:  "Success fee",
				Amount: cost.Sub(retainer),
				Detail: "Due on placement",
			},
		}, nil

	case types.RetainerDouble:
		half := cost.Mul(s.retainerFraction).Div(two).Round(minorUnitPlaces)
		return []types.BillingMilestone{
			{
				Label:  "Retainer payment 1",
				Amount: half,
				Detail: "Due on engagement",
			},
			{
				Label:  "Retainer payment 2",
				Amount: half,
				Detail: "Due at shortlist delivery",
			},
			{
				Label:  "Success fee",
				Amount: cost.Sub(half).Sub(half),
				Detail: "Due on placement",
			},
		}, nil

	case types.RetainerNone:
		return nil, errors.MissingRetainerScheme(modality.String())

	default:
		return nil, errors.InvalidSelectionf("unknown retainer scheme: %q", scheme)
	}
}

// Package rates - Unit price resolution
// Resolves the price of one position under a modality by dispatching
// on the business unit's pricing model tag.
package rates

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/discount"
	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// Resolver computes per-position unit prices
type Resolver struct {
	schedule      *discount.Schedule
	annualization decimal.Decimal
}

// NewResolver creates a resolver over a discount schedule.
// annualization converts the selection's monthly compensation figure
// to an annual one (pay periods per year).
func NewResolver(schedule *discount.Schedule, annualization decimal.Decimal) *Resolver {
	return &Resolver{
		schedule:      schedule,
		annualization: annualization,
	}
}

// UnitPrice returns the price for one position of the given modality.
// totalPositions is the unit-wide position count used for the volume
// tier; the threshold itself lives in the discount schedule.
func (r *Resolver) UnitPrice(
	unit *types.BusinessUnit,
	modality types.Modality,
	baseCompensation decimal.Decimal,
	totalPositions int,
) (decimal.Decimal, error) {
	switch unit.Model {
	case types.PricingFlat:
		return r.flatPrice(unit, modality)

	case types.PricingPercentage:
		if modality == types.ModalityAI {
			return unit.AIFee, nil
		}
		fraction, err := r.schedule.RateFractionFor(modality, totalPositions)
		if err != nil {
			return decimal.Zero, err
		}
		annualized := baseCompensation.Mul(r.annualization)
		return annualized.Mul(fraction), nil

	default:
		return decimal.Zero, errors.Newf(errors.TypeInternal, "business unit %s: unhandled pricing model %q", unit.ID, unit.Model)
	}
}

// flatPrice resolves flat-model units, which carry a fixed AI/Hybrid
// price pair and do not offer the Human modality.
func (r *Resolver) flatPrice(unit *types.BusinessUnit, modality types.Modality) (decimal.Decimal, error) {
	switch modality {
	case types.ModalityAI:
		return unit.AIFee, nil
	case types.ModalityHybrid:
		return unit.HybridFee, nil
	default:
		return decimal.Zero, errors.InvalidSelectionf("business unit %s does not offer the %s modality", unit.ID, modality)
	}
}

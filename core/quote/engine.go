// Package quote provides the proposal aggregation engine.
// CLI and HTTP API are thin wrappers around this engine.
//
// Aggregate is a pure function of the selection snapshot plus the
// injected catalog snapshot: the same inputs always produce the same
// proposal, and no partial proposal is ever returned.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"talent-quote/core/billing"
	"talent-quote/core/discount"
	"talent-quote/core/rates"
	"talent-quote/core/types"
	"talent-quote/internal/config"
)

var one = decimal.NewFromInt(1)

// Catalog is the read-only catalog handle the engine computes against.
// Implemented by core/catalog.Catalog; injected, never a singleton.
type Catalog interface {
	BusinessUnit(id string) (*types.BusinessUnit, error)
	Addon(id string) (*types.Addon, error)
	Assessment(id string) (*types.Assessment, error)
}

// Engine computes proposals from selection snapshots
type Engine struct {
	catalog   Catalog
	schedule  *discount.Schedule
	resolver  *rates.Resolver
	scheduler *billing.Scheduler
	currency  types.Currency
}

// NewEngine creates an engine over a catalog snapshot with the given
// pricing parameters.
func NewEngine(catalog Catalog, pricing config.PricingConfig) *Engine {
	schedule := discount.NewSchedule(pricing.MultiPositionThreshold, pricing.Rates)
	return &Engine{
		catalog:   catalog,
		schedule:  schedule,
		resolver:  rates.NewResolver(schedule, pricing.AnnualizationFactor),
		scheduler: billing.NewScheduler(pricing.RetainerFraction),
		currency:  pricing.Currency,
	}
}

// Aggregate computes the full proposal for a selection snapshot.
// The whole selection is validated before any cost is computed.
func (e *Engine) Aggregate(sel types.Selection) (*types.Proposal, error) {
	if err := e.validate(sel); err != nil {
		return nil, err
	}

	proposal := &types.Proposal{
		TotalAmount: decimal.Zero,
		Currency:    e.currency,
		Modalities:  []types.ModalityResult{},
	}

	for _, unitSel := range sel.Units {
		if err := e.aggregateUnit(proposal, unitSel, sel.Retainer); err != nil {
			return nil, err
		}
	}

	for _, id := range sel.AddonIDs {
		addon, err := e.catalog.Addon(id)
		if err != nil {
			return nil, err
		}
		proposal.Addons = append(proposal.Addons, types.AddonCost{
			AddonID: addon.ID,
			Name:    addon.Name,
			Price:   addon.Price,
		})
	}

	for _, assessSel := range sel.Assessments {
		assessment, err := e.catalog.Assessment(assessSel.AssessmentID)
		if err != nil {
			return nil, err
		}
		disc := e.schedule.DiscountFor(assessment, assessSel.UserCount)
		users := decimal.NewFromInt(int64(assessSel.UserCount))
		cost := assessment.BasePrice.Mul(users).Mul(one.Sub(disc)).Round(2)
		proposal.Assessments = append(proposal.Assessments, types.AssessmentCost{
			AssessmentID: assessment.ID,
			Name:         assessment.Name,
			UserCount:    assessSel.UserCount,
			Discount:     disc,
			Cost:         cost,
		})
	}

	proposal.TotalAmount = proposal.ModalityTotal().
		Add(proposal.AddonTotal()).
		Add(proposal.AssessmentTotal())

	return proposal, nil
}

// aggregateUnit prices every nonzero modality of one unit selection.
// Modalities are visited in canonical order for deterministic output.
func (e *Engine) aggregateUnit(proposal *types.Proposal, unitSel types.UnitSelection, scheme types.RetainerScheme) error {
	unit, err := e.catalog.BusinessUnit(unitSel.BusinessUnitID)
	if err != nil {
		return err
	}

	totalPositions := unitSel.TotalPositions()

	for _, modality := range types.Modalities {
		count := unitSel.Count(modality)
		if count == 0 {
			continue
		}

		unitPrice, err := e.resolver.UnitPrice(unit, modality, unitSel.BaseCompensation, totalPositions)
		if err != nil {
			return err
		}
		cost := unitPrice.Mul(decimal.NewFromInt(int64(count)))

		// Zero compensation on a percentage unit is valid input but
		// flags an input-quality warning when it zeroes out a
		// Hybrid/Human position.
		if unit.Model == types.PricingPercentage &&
			modality != types.ModalityAI &&
			unitSel.BaseCompensation.IsZero() {
			proposal.Warnings = append(proposal.Warnings, fmt.Sprintf(
				"%s: zero base compensation yields zero-cost %s positions",
				unit.Name, modality.Label()))
		}

		milestones, err := e.scheduler.Schedule(unit.Model, modality, cost, scheme)
		if err != nil {
			return err
		}

		proposal.Modalities = append(proposal.Modalities, types.ModalityResult{
			BusinessUnitID: unit.ID,
			Type:           modality,
			Count:          count,
			UnitPrice:      unitPrice,
			Cost:           cost,
			Milestones:     milestones,
		})
	}

	return nil
}

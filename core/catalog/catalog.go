// Package catalog - Read-only service catalog
// Holds the business unit, addon, and assessment definitions a quote
// is computed against. Purely structural access, no pricing logic.
package catalog

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

var one = decimal.NewFromInt(1)

// Catalog is an immutable snapshot of the service catalog.
// Entries are registered once at load time and only read afterwards.
type Catalog struct {
	units       map[string]*types.BusinessUnit
	addons      map[string]*types.Addon
	assessments map[string]*types.Assessment

	// registration order, preserved for deterministic listings
	unitOrder       []string
	addonOrder      []string
	assessmentOrder []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		units:       make(map[string]*types.BusinessUnit),
		addons:      make(map[string]*types.Addon),
		assessments: make(map[string]*types.Assessment),
	}
}

// AddBusinessUnit registers a business unit
func (c *Catalog) AddBusinessUnit(unit types.BusinessUnit) error {
	if unit.ID == "" {
		return errors.Config("business unit id is empty", nil)
	}
	if unit.Model != types.PricingPercentage && unit.Model != types.PricingFlat {
		return errors.Newf(errors.TypeConfig, "business unit %s: unknown pricing model %q", unit.ID, unit.Model)
	}
	if _, exists := c.units[unit.ID]; exists {
		return errors.Newf(errors.TypeConfig, "duplicate business unit id: %s", unit.ID)
	}
	c.units[unit.ID] = &unit
	c.unitOrder = append(c.unitOrder, unit.ID)
	return nil
}

// AddAddon registers an addon
func (c *Catalog) AddAddon(addon types.Addon) error {
	if addon.ID == "" {
		return errors.Config("addon id is empty", nil)
	}
	if _, exists := c.addons[addon.ID]; exists {
		return errors.Newf(errors.TypeConfig, "duplicate addon id: %s", addon.ID)
	}
	c.addons[addon.ID] = &addon
	c.addonOrder = append(c.addonOrder, addon.ID)
	return nil
}

// AddAssessment registers an assessment after validating its tiers
func (c *Catalog) AddAssessment(assessment types.Assessment) error {
	if assessment.ID == "" {
		return errors.Config("assessment id is empty", nil)
	}
	if _, exists := c.assessments[assessment.ID]; exists {
		return errors.Newf(errors.TypeConfig, "duplicate assessment id: %s", assessment.ID)
	}
	if err := validateTiers(assessment.ID, assessment.Tiers); err != nil {
		return err
	}
	c.assessments[assessment.ID] = &assessment
	c.assessmentOrder = append(c.assessmentOrder, assessment.ID)
	return nil
}

// validateTiers enforces tier monotonicity: higher tiers require more
// users and yield a discount at least as large as lower tiers.
func validateTiers(id string, tiers []types.DiscountTier) error {
	for i, tier := range tiers {
		if tier.MinUsers < 1 {
			return errors.Newf(errors.TypeConfig, "assessment %s: tier %d has min_users < 1", id, i)
		}
		if tier.Discount.IsNegative() || tier.Discount.GreaterThan(one) {
			return errors.Newf(errors.TypeConfig, "assessment %s: tier %d discount out of [0,1]", id, i)
		}
		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if tier.MinUsers <= prev.MinUsers {
			return errors.Newf(errors.TypeConfig, "assessment %s: tier %d min_users not ascending", id, i)
		}
		if tier.Discount.LessThan(prev.Discount) {
			return errors.Newf(errors.TypeConfig, "assessment %s: tier %d discount decreases", id, i)
		}
	}
	return nil
}

// BusinessUnit returns a business unit by id
func (c *Catalog) BusinessUnit(id string) (*types.BusinessUnit, error) {
	unit, ok := c.units[id]
	if !ok {
		return nil, errors.NotFound("business unit", id)
	}
	return unit, nil
}

// Addon returns an addon by id
func (c *Catalog) Addon(id string) (*types.Addon, error) {
	addon, ok := c.addons[id]
	if !ok {
		return nil, errors.NotFound("addon", id)
	}
	return addon, nil
}

// Assessment returns an assessment by id
func (c *Catalog) Assessment(id string) (*types.Assessment, error) {
	assessment, ok := c.assessments[id]
	if !ok {
		return nil, errors.NotFound("assessment", id)
	}
	return assessment, nil
}

// BusinessUnits returns all business units in registration order
func (c *Catalog) BusinessUnits() []types.BusinessUnit {
	result := make([]types.BusinessUnit, 0, len(c.unitOrder))
	for _, id := range c.unitOrder {
		result = append(result, *c.units[id])
	}
	return result
}

// Addons returns all addons in registration order
func (c *Catalog) Addons() []types.Addon {
	result := make([]types.Addon, 0, len(c.addonOrder))
	for _, id := range c.addonOrder {
		result = append(result, *c.addons[id])
	}
	return result
}

// Assessments returns all assessments in registration order
func (c *Catalog) Assessments() []types.Assessment {
	result := make([]types.Assessment, 0, len(c.assessmentOrder))
	for _, id := range c.assessmentOrder {
		result = append(result, *c.assessments[id])
	}
	return result
}

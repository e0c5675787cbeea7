// Package catalog - Built-in catalog
package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	corecatalog "talent-quote/core/catalog"
	"talent-quote/core/types"
)

// StaticSource serves the built-in demo catalog. Used when no catalog
// file is configured.
type StaticSource struct{}

// NewStaticSource creates the built-in catalog source
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Load builds the built-in catalog
func (s *StaticSource) Load(ctx context.Context) (*corecatalog.Catalog, error) {
	cat := corecatalog.New()

	units := []types.BusinessUnit{
		{
			ID:    "standard",
			Name:  "Standard Search",
			Model: types.PricingPercentage,
			AIFee: decimal.NewFromInt(4500),
			Plans: []types.Plan{
				{Name: "Retained", Type: "retained", BasePrice: decimal.Zero, Description: "Percentage of annualized compensation"},
				{Name: "AI Search", Type: "flat", BasePrice: decimal.NewFromInt(4500), Description: "Flat fee per search"},
			},
		},
		{
			ID:        "express",
			Name:      "Express Placement",
			Model:     types.PricingFlat,
			AIFee:     decimal.NewFromInt(1900),
			HybridFee: decimal.NewFromInt(3400),
			Plans: []types.Plan{
				{Name: "Express AI", Type: "flat", BasePrice: decimal.NewFromInt(1900), Description: "Flat fee per search"},
				{Name: "Express Hybrid", Type: "flat", BasePrice: decimal.NewFromInt(3400), Description: "Flat fee per search"},
			},
		},
	}

	addons := []types.Addon{
		{ID: "branding", Name: "Employer Branding Pack", Price: decimal.NewFromInt(1500), Description: "Role page and outreach assets"},
		{ID: "market-map", Name: "Market Mapping Report", Price: decimal.NewFromInt(2400), Description: "Talent landscape analysis"},
	}

	assessments := []types.Assessment{
		{
			ID:        "cognitive",
			Name:      "Cognitive Battery",
			BasePrice: decimal.NewFromInt(120),
			Tiers: []types.DiscountTier{
				{MinUsers: 10, Discount: decimal.NewFromFloat(0.10)},
				{MinUsers: 50, Discount: decimal.NewFromFloat(0.20)},
			},
		},
		{
			ID:        "leadership",
			Name:      "Leadership Profile",
			BasePrice: decimal.NewFromInt(250),
			Tiers: []types.DiscountTier{
				{MinUsers: 5, Discount: decimal.NewFromFloat(0.05)},
				{MinUsers: 20, Discount: decimal.NewFromFloat(0.15)},
			},
		},
	}

	for _, unit := range units {
		if err := cat.AddBusinessUnit(unit); err != nil {
			return nil, err
		}
	}
	for _, addon := range addons {
		if err := cat.AddAddon(addon); err != nil {
			return nil, err
		}
	}
	for _, assessment := range assessments {
		if err := cat.AddAssessment(assessment); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

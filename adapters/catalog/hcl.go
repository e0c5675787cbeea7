// Package catalog provides catalog source adapters.
// The canonical catalog format is an HCL file with business_unit,
// addon, and assessment blocks.
package catalog

import (
	"context"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	corecatalog "talent-quote/core/catalog"
	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// fileCatalog is the top-level HCL schema
type fileCatalog struct {
	BusinessUnits []businessUnitBlock `hcl:"business_unit,block"`
	Addons        []addonBlock        `hcl:"addon,block"`
	Assessments   []assessmentBlock   `hcl:"assessment,block"`
}

type businessUnitBlock struct {
	ID        string      `hcl:"id,label"`
	Name      string      `hcl:"name"`
	Model     string      `hcl:"model"`
	AIFee     float64     `hcl:"ai_fee"`
	HybridFee float64     `hcl:"hybrid_fee,optional"`
	Plans     []planBlock `hcl:"plan,block"`
}

// planBlock's label carries the plan name; there is no separate
// name attribute.
type planBlock struct {
	Name        string  `hcl:"name,label"`
	Type        string  `hcl:"type"`
	BasePrice   float64 `hcl:"base_price"`
	Description string  `hcl:"description,optional"`
}

type addonBlock struct {
	ID          string  `hcl:"id,label"`
	Name        string  `hcl:"name"`
	Price       float64 `hcl:"price"`
	Description string  `hcl:"description,optional"`
}

type assessmentBlock struct {
	ID        string      `hcl:"id,label"`
	Name      string      `hcl:"name"`
	BasePrice float64     `hcl:"base_price"`
	Tiers     []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	MinUsers int     `hcl:"min_users"`
	Discount float64 `hcl:"discount"`
}

// FileSource loads the catalog from an HCL file
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed catalog source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load parses the catalog file. Parse and validation failures are
// CATALOG_UNAVAILABLE: the engine cannot compute without catalog data.
func (s *FileSource) Load(ctx context.Context) (*corecatalog.Catalog, error) {
	var parsed fileCatalog
	if err := hclsimple.DecodeFile(s.Path, nil, &parsed); err != nil {
		return nil, errors.CatalogUnavailable("failed to parse catalog file "+s.Path, err)
	}
	return buildCatalog(&parsed)
}

// Parse decodes catalog HCL from memory; filename is used for
// diagnostics only and must carry an .hcl suffix.
func Parse(filename string, src []byte) (*corecatalog.Catalog, error) {
	var parsed fileCatalog
	if err := hclsimple.Decode(filename, src, nil, &parsed); err != nil {
		return nil, errors.CatalogUnavailable("failed to parse catalog", err)
	}
	return buildCatalog(&parsed)
}

func buildCatalog(parsed *fileCatalog) (*corecatalog.Catalog, error) {
	cat := corecatalog.New()

	for _, block := range parsed.BusinessUnits {
		unit := types.BusinessUnit{
			ID:        block.ID,
			Name:      block.Name,
			Model:     types.PricingModel(block.Model),
			AIFee:     decimal.NewFromFloat(block.AIFee),
			HybridFee: decimal.NewFromFloat(block.HybridFee),
		}
		for _, plan := range block.Plans {
			unit.Plans = append(unit.Plans, types.Plan{
				Name:        plan.Name,
				Type:        plan.Type,
				BasePrice:   decimal.NewFromFloat(plan.BasePrice),
				Description: plan.Description,
			})
		}
		if err := cat.AddBusinessUnit(unit); err != nil {
			return nil, errors.CatalogUnavailable("invalid catalog entry", err)
		}
	}

	for _, block := range parsed.Addons {
		addon := types.Addon{
			ID:          block.ID,
			Name:        block.Name,
			Price:       decimal.NewFromFloat(block.Price),
			Description: block.Description,
		}
		if err := cat.AddAddon(addon); err != nil {
			return nil, errors.CatalogUnavailable("invalid catalog entry", err)
		}
	}

	for _, block := range parsed.Assessments {
		assessment := types.Assessment{
			ID:        block.ID,
			Name:      block.Name,
			BasePrice: decimal.NewFromFloat(block.BasePrice),
		}
		for _, tier := range block.Tiers {
			assessment.Tiers = append(assessment.Tiers, types.DiscountTier{
				MinUsers: tier.MinUsers,
				Discount: decimal.NewFromFloat(tier.Discount),
			})
		}
		if err := cat.AddAssessment(assessment); err != nil {
			return nil, errors.CatalogUnavailable("invalid catalog entry", err)
		}
	}

	return cat, nil
}

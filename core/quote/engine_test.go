package quote

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"talent-quote/core/catalog"
	"talent-quote/core/types"
	"talent-quote/internal/config"
	"talent-quote/internal/errors"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()

	units := []types.BusinessUnit{
		{
			ID:    "standard",
			Name:  "Standard Search",
			Model: types.PricingPercentage,
			AIFee: decimal.NewFromInt(4500),
		},
		{
			ID:        "express",
			Name:      "Express Placement",
			Model:     types.PricingFlat,
			AIFee:     decimal.NewFromInt(1900),
			HybridFee: decimal.NewFromInt(3400),
		},
	}
	for _, unit := range units {
		if err := cat.AddBusinessUnit(unit); err != nil {
			t.Fatalf("AddBusinessUnit: %v", err)
		}
	}

	if err := cat.AddAddon(types.Addon{
		ID:    "branding",
		Name:  "Employer Branding Pack",
		Price: decimal.NewFromInt(1500),
	}); err != nil {
		t.Fatalf("AddAddon: %v", err)
	}

	if err := cat.AddAssessment(types.Assessment{
		ID:        "cognitive",
		Name:      "Cognitive Battery",
		BasePrice: decimal.NewFromInt(120),
		Tiers: []types.DiscountTier{
			{MinUsers: 10, Discount: decimal.NewFromFloat(0.10)},
			{MinUsers: 50, Discount: decimal.NewFromFloat(0.20)},
		},
	}); err != nil {
		t.Fatalf("AddAssessment: %v", err)
	}

	return cat
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testCatalog(t), config.Default().Pricing)
}

// TestAggregateAIOnly tests a single AI position on a percentage unit
func TestAggregateAIOnly(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", AI: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(proposal.Modalities) != 1 {
		t.Fatalf("expected 1 modality result, got %d", len(proposal.Modalities))
	}
	result := proposal.Modalities[0]
	if result.Type != types.ModalityAI || result.Count != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !result.Cost.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected cost 4500, got %s", result.Cost)
	}
	if len(result.Milestones) != 1 || !result.Milestones[0].Amount.Equal(result.Cost) {
		t.Errorf("expected one 100%% milestone, got %+v", result.Milestones)
	}
	if !proposal.TotalAmount.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected total 4500, got %s", proposal.TotalAmount)
	}
}

// TestAggregateHybridMultiPosition tests the multi-position tier and
// the single retainer scheme end to end
func TestAggregateHybridMultiPosition(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", Hybrid: 2, BaseCompensation: decimal.NewFromInt(10000)},
		},
		Retainer: types.RetainerSingle,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(proposal.Modalities) != 1 {
		t.Fatalf("expected 1 modality result, got %d", len(proposal.Modalities))
	}
	result := proposal.Modalities[0]

	// 10000/month * 12 * 0.12 (multi tier) = 14400 per position
	if !result.UnitPrice.Equal(decimal.NewFromInt(14400)) {
		t.Errorf("expected unit price 14400, got %s", result.UnitPrice)
	}
	if !result.Cost.Equal(decimal.NewFromInt(28800)) {
		t.Errorf("expected cost 28800, got %s", result.Cost)
	}
	if len(result.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(result.Milestones))
	}
	if !result.Milestones[0].Amount.Equal(decimal.NewFromInt(7200)) {
		t.Errorf("expected retainer 7200, got %s", result.Milestones[0].Amount)
	}
	if !result.MilestoneTotal().Equal(result.Cost) {
		t.Errorf("milestones sum to %s, want %s", result.MilestoneTotal(), result.Cost)
	}
}

// TestAggregateMissingRetainer tests scenario: hybrid positions with
// no retainer scheme chosen
func TestAggregateMissingRetainer(t *testing.T) {
	_, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", Hybrid: 2, BaseCompensation: decimal.NewFromInt(10000)},
		},
	})
	if err == nil {
		t.Fatal("expected error for missing retainer scheme")
	}
	if !errors.IsType(err, errors.TypeMissingRetainerScheme) {
		t.Errorf("expected MISSING_RETAINER_SCHEME, got %v", err)
	}
}

// TestAggregateNegativeCount tests that validation fails before any
// cost computation
func TestAggregateNegativeCount(t *testing.T) {
	_, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", AI: -1},
		},
	})
	if err == nil {
		t.Fatal("expected error for negative count")
	}
	if !errors.IsType(err, errors.TypeInvalidSelection) {
		t.Errorf("expected INVALID_SELECTION, got %v", err)
	}
}

// TestAggregateUnknownIdentifiers tests unknown catalog identifiers
func TestAggregateUnknownIdentifiers(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name string
		sel  types.Selection
	}{
		{"unknown business unit", types.Selection{
			Units: []types.UnitSelection{{BusinessUnitID: "missing", AI: 1}},
		}},
		{"unknown addon", types.Selection{
			AddonIDs: []string{"missing"},
		}},
		{"unknown assessment", types.Selection{
			Assessments: []types.AssessmentSelection{{AssessmentID: "missing", UserCount: 3}},
		}},
		{"assessment user count below one", types.Selection{
			Assessments: []types.AssessmentSelection{{AssessmentID: "cognitive", UserCount: 0}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Aggregate(tt.sel)
			if !errors.IsType(err, errors.TypeInvalidSelection) {
				t.Errorf("expected INVALID_SELECTION, got %v", err)
			}
		})
	}
}

// TestAggregateAssessmentDiscount tests the tiered assessment cost
func TestAggregateAssessmentDiscount(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Assessments: []types.AssessmentSelection{
			{AssessmentID: "cognitive", UserCount: 12},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 120 * 12 * (1 - 0.10) = 1296
	expected := decimal.NewFromInt(1296)
	if len(proposal.Assessments) != 1 {
		t.Fatalf("expected 1 assessment cost, got %d", len(proposal.Assessments))
	}
	if !proposal.Assessments[0].Cost.Equal(expected) {
		t.Errorf("expected assessment cost %s, got %s", expected, proposal.Assessments[0].Cost)
	}
	if !proposal.TotalAmount.Equal(expected) {
		t.Errorf("expected total %s, got %s", expected, proposal.TotalAmount)
	}
}

// TestAggregateTotalConsistency tests the total against its parts for
// a full mixed selection
func TestAggregateTotalConsistency(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", AI: 1, Hybrid: 1, Human: 1, BaseCompensation: decimal.NewFromInt(9000)},
			{BusinessUnitID: "express", AI: 2, Hybrid: 1},
		},
		AddonIDs: []string{"branding"},
		Assessments: []types.AssessmentSelection{
			{AssessmentID: "cognitive", UserCount: 55},
		},
		Retainer: types.RetainerDouble,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := proposal.ModalityTotal().
		Add(proposal.AddonTotal()).
		Add(proposal.AssessmentTotal())
	if !proposal.TotalAmount.Equal(expected) {
		t.Errorf("total %s does not equal component sum %s", proposal.TotalAmount, expected)
	}

	if err := Verify(proposal); err != nil {
		t.Errorf("proposal failed verification: %v", err)
	}

	// modality order is stable: AI, Hybrid, Human within each unit
	wantOrder := []types.Modality{
		types.ModalityAI, types.ModalityHybrid, types.ModalityHuman,
		types.ModalityAI, types.ModalityHybrid,
	}
	if len(proposal.Modalities) != len(wantOrder) {
		t.Fatalf("expected %d modality results, got %d", len(wantOrder), len(proposal.Modalities))
	}
	for i, want := range wantOrder {
		if proposal.Modalities[i].Type != want {
			t.Errorf("result %d: expected %s, got %s", i, want, proposal.Modalities[i].Type)
		}
	}
}

// TestAggregateZeroSelection tests the all-zero boundary
func TestAggregateZeroSelection(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !proposal.TotalAmount.IsZero() {
		t.Errorf("expected zero total, got %s", proposal.TotalAmount)
	}
	if len(proposal.Modalities) != 0 {
		t.Errorf("expected empty modality list, got %d entries", len(proposal.Modalities))
	}
}

// TestAggregateZeroCompensationWarning tests the input-quality warning
// for zero-cost Hybrid positions
func TestAggregateZeroCompensationWarning(t *testing.T) {
	proposal, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", Hybrid: 1},
		},
		Retainer: types.RetainerSingle,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proposal.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(proposal.Warnings))
	}
	if !proposal.TotalAmount.IsZero() {
		t.Errorf("expected zero total, got %s", proposal.TotalAmount)
	}
	if len(proposal.Modalities) != 1 || len(proposal.Modalities[0].Milestones) != 0 {
		t.Errorf("expected zero-cost result without milestones, got %+v", proposal.Modalities)
	}
}

// TestAggregateFlatUnitHuman tests that flat units reject Human positions
func TestAggregateFlatUnitHuman(t *testing.T) {
	_, err := testEngine(t).Aggregate(types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "express", Human: 1},
		},
	})
	if !errors.IsType(err, errors.TypeInvalidSelection) {
		t.Errorf("expected INVALID_SELECTION, got %v", err)
	}
}

// TestAggregateIdempotent proves two identical snapshots yield
// identical proposals
func TestAggregateIdempotent(t *testing.T) {
	engine := testEngine(t)
	sel := types.Selection{
		Units: []types.UnitSelection{
			{BusinessUnitID: "standard", AI: 1, Human: 2, BaseCompensation: decimal.NewFromInt(12500)},
		},
		AddonIDs: []string{"branding"},
		Assessments: []types.AssessmentSelection{
			{AssessmentID: "cognitive", UserCount: 10},
		},
		Retainer: types.RetainerSingle,
	}

	first, err := engine.Aggregate(sel)
	if err != nil {
		t.Fatalf("first aggregate: %v", err)
	}
	second, err := engine.Aggregate(sel)
	if err != nil {
		t.Fatalf("second aggregate: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("proposals differ:\n%s\n%s", firstJSON, secondJSON)
	}
}

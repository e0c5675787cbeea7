package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

func testScheduler() *Scheduler {
	return NewScheduler(decimal.NewFromFloat(0.25))
}

func milestoneSum(milestones []types.BillingMilestone) decimal.Decimal {
	total := decimal.Zero
	for _, m := range milestones {
		total = total.Add(m.Amount)
	}
	return total
}

// TestScheduleAI tests the single upfront milestone for AI positions
func TestScheduleAI(t *testing.T) {
	cost := decimal.NewFromInt(4500)
	milestones, err := testScheduler().Schedule(types.PricingPercentage, types.ModalityAI, cost, types.RetainerNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 1 {
		t.Fatalf("expected 1 milestone, got %d", len(milestones))
	}
	if !milestones[0].Amount.Equal(cost) {
		t.Errorf("expected amount %s, got %s", cost, milestones[0].Amount)
	}
}

// TestScheduleFlatHybrid tests that flat-model fees bill upfront
// without requiring a retainer scheme
func TestScheduleFlatHybrid(t *testing.T) {
	cost := decimal.NewFromInt(3400)
	milestones, err := testScheduler().Schedule(types.PricingFlat, types.ModalityHybrid, cost, types.RetainerNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 1 {
		t.Fatalf("expected 1 milestone, got %d", len(milestones))
	}
	if !milestones[0].Amount.Equal(cost) {
		t.Errorf("expected amount %s, got %s", cost, milestones[0].Amount)
	}
}

// TestScheduleSingleRetainer tests the single scheme split
func TestScheduleSingleRetainer(t *testing.T) {
	cost := decimal.NewFromInt(28800)
	milestones, err := testScheduler().Schedule(types.PricingPercentage, types.ModalityHybrid, cost, types.RetainerSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(milestones))
	}
	if !milestones[0].Amount.Equal(decimal.NewFromInt(7200)) {
		t.Errorf("expected retainer 7200, got %s", milestones[0].Amount)
	}
	if !milestones[1].Amount.Equal(decimal.NewFromInt(21600)) {
		t.Errorf("expected success fee 21600, got %s", milestones[1].Amount)
	}
}

// TestScheduleDoubleRetainer tests the double scheme split
func TestScheduleDoubleRetainer(t *testing.T) {
	cost := decimal.NewFromInt(28800)
	milestones, err := testScheduler().Schedule(types.PricingPercentage, types.ModalityHuman, cost, types.RetainerDouble)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(milestones))
	}
	if !milestones[0].Amount.Equal(milestones[1].Amount) {
		t.Errorf("retainer halves differ: %s vs %s", milestones[0].Amount, milestones[1].Amount)
	}
	if !milestones[0].Amount.Equal(decimal.NewFromInt(3600)) {
		t.Errorf("expected retainer half 3600, got %s", milestones[0].Amount)
	}
	if !milestoneSum(milestones).Equal(cost) {
		t.Errorf("milestones sum to %s, want %s", milestoneSum(milestones), cost)
	}
}

// TestScheduleMissingScheme tests the missing retainer scheme failure
func TestScheduleMissingScheme(t *testing.T) {
	cost := decimal.NewFromInt(1000)
	_, err := testScheduler().Schedule(types.PricingPercentage, types.ModalityHuman, cost, types.RetainerNone)
	if err == nil {
		t.Fatal("expected error for missing retainer scheme")
	}
	if !errors.IsType(err, errors.TypeMissingRetainerScheme) {
		t.Errorf("expected MISSING_RETAINER_SCHEME, got %v", err)
	}
}

// TestScheduleZeroCost tests that zero cost yields no milestones
func TestScheduleZeroCost(t *testing.T) {
	milestones, err := testScheduler().Schedule(types.PricingPercentage, types.ModalityHybrid, decimal.Zero, types.RetainerNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 0 {
		t.Errorf("expected no milestones, got %d", len(milestones))
	}
}

// TestMilestoneConservation proves the milestones always sum exactly
// to the cost, with the rounding remainder on the last milestone
func TestMilestoneConservation(t *testing.T) {
	scheduler := testScheduler()

	costs := []string{"100.01", "33.33", "0.01", "99999.99", "12345.67", "0.03"}
	schemes := []types.RetainerScheme{types.RetainerSingle, types.RetainerDouble}

	for _, raw := range costs {
		cost := decimal.RequireFromString(raw)
		for _, scheme := range schemes {
			milestones, err := scheduler.Schedule(types.PricingPercentage, types.ModalityHuman, cost, scheme)
			if err != nil {
				t.Fatalf("cost=%s scheme=%s: %v", raw, scheme, err)
			}
			if !milestoneSum(milestones).Equal(cost) {
				t.Errorf("cost=%s scheme=%s: milestones sum to %s", raw, scheme, milestoneSum(milestones))
			}
			for i, m := range milestones[:len(milestones)-1] {
				if !m.Amount.Equal(m.Amount.Round(2)) {
					t.Errorf("cost=%s scheme=%s: milestone %d not minor-unit aligned: %s", raw, scheme, i, m.Amount)
				}
			}
		}
	}
}

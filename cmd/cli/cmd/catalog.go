// Package cmd - catalog command
package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"talent-quote/internal/config"
)

var hundred = decimal.NewFromInt(100)

// catalogCmd lists the loaded catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List business units, addons, and assessments",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := loadCatalog(ctx, config.Get())
	if err != nil {
		return err
	}

	fmt.Println("Business units:")
	for _, unit := range cat.BusinessUnits() {
		fmt.Printf("  %-12s %s (%s pricing, AI fee %s)\n",
			unit.ID, unit.Name, unit.Model, unit.AIFee.StringFixed(2))
		for _, plan := range unit.Plans {
			fmt.Printf("    - %s (%s)\n", plan.Name, plan.Type)
		}
	}

	fmt.Println("\nAddons:")
	for _, addon := range cat.Addons() {
		fmt.Printf("  %-12s %s: %s\n", addon.ID, addon.Name, addon.Price.StringFixed(2))
	}

	fmt.Println("\nAssessments:")
	for _, assessment := range cat.Assessments() {
		fmt.Printf("  %-12s %s: %s per user\n",
			assessment.ID, assessment.Name, assessment.BasePrice.StringFixed(2))
		for _, tier := range assessment.Tiers {
			fmt.Printf("    - %d+ users: %s%% off\n",
				tier.MinUsers, tier.Discount.Mul(hundred).StringFixed(0))
		}
	}

	return nil
}

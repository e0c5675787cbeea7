// Package cmd - quote command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	catalogsource "talent-quote/adapters/catalog"
	"talent-quote/adapters/delivery"
	"talent-quote/adapters/tracking"
	"talent-quote/core/catalog"
	"talent-quote/core/compare"
	"talent-quote/core/output"
	"talent-quote/core/quote"
	"talent-quote/core/types"
	"talent-quote/internal/config"
	"talent-quote/internal/logging"
)

var (
	outputFormat    string
	compareTags     []string
	sendTo          string
	trackingChannel string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <selection.json>",
	Short: "Compute a proposal for a selection snapshot",
	Long: `Compute the full proposal for a selection snapshot.

The selection file is a JSON snapshot of business unit position
counts, addons, assessments, and the retainer scheme.

Examples:
  talent-quote quote selection.json
  talent-quote quote --format json selection.json
  talent-quote quote --compare ai,hybrid selection.json
  talent-quote quote --send client@example.com selection.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringSliceVarP(&compareTags, "compare", "c", nil, "modalities to compare (ai, hybrid, human)")
	quoteCmd.Flags().StringVar(&sendTo, "send", "", "deliver the proposal to a recipient")
	quoteCmd.Flags().StringVar(&trackingChannel, "channel", "cli", "tracking channel label")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	selection, err := readSelection(args[0])
	if err != nil {
		return err
	}

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	engine := quote.NewEngine(cat, cfg.Pricing)
	proposal, err := engine.Aggregate(*selection)
	if err != nil {
		return err
	}

	tracking.NewLogTracker().Track(proposal, map[string]string{
		"units": fmt.Sprintf("%d", len(selection.Units)),
	}, trackingChannel)

	if len(compareTags) > 0 {
		return renderComparison(proposal, compareTags)
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter := output.For(format, cfg.Output.ShowMilestones)
	if err := formatter.Render(os.Stdout, proposal); err != nil {
		return err
	}

	if sendTo != "" {
		if err := delivery.NewLogSender().Send(ctx, sendTo, proposal); err != nil {
			return err
		}
		fmt.Printf("\nProposal sent to %s\n", sendTo)
	}

	return nil
}

func readSelection(path string) (*types.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}
	var selection types.Selection
	if err := json.Unmarshal(data, &selection); err != nil {
		return nil, fmt.Errorf("failed to parse selection file: %w", err)
	}
	return &selection, nil
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	var source catalog.Source
	if cfg.Catalog.Path != "" {
		logging.Info("loading catalog file")
		source = catalogsource.NewFileSource(cfg.Catalog.Path)
	} else {
		source = catalogsource.NewStaticSource()
	}
	return catalog.NewAccessor(source).Get(ctx)
}

func renderComparison(proposal *types.Proposal, tags []string) error {
	modalities := make([]types.Modality, 0, len(tags))
	for _, tag := range tags {
		modality := types.Modality(tag)
		if !modality.IsValid() {
			return fmt.Errorf("unknown modality: %s", tag)
		}
		modalities = append(modalities, modality)
	}

	comparison := compare.Build(proposal, modalities)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(comparison)
}

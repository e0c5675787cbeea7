// Package discount - Rate tier and assessment discount resolution
// Single source of truth for the volume threshold and tier tables so
// the rate resolver never hardcodes them.
package discount

import (
	"github.com/shopspring/decimal"

	"talent-quote/core/types"
	"talent-quote/internal/errors"
)

// Fractions holds the rate fractions for one modality
type Fractions struct {
	// Single is the single-position rate fraction
	Single decimal.Decimal `json:"single"`

	// Multi is the multi-position rate fraction
	Multi decimal.Decimal `json:"multi"`
}

// Schedule resolves which rate tier and which assessment discount
// tier apply to a selection.
type Schedule struct {
	threshold int
	rates     map[types.Modality]Fractions
}

// NewSchedule creates a schedule from a volume threshold and a
// per-modality fraction table.
func NewSchedule(threshold int, rates map[types.Modality]Fractions) *Schedule {
	if threshold < 1 {
		threshold = 1
	}
	return &Schedule{
		threshold: threshold,
		rates:     rates,
	}
}

// MultiPosition reports whether the multi-position tier applies for
// the given total position count within one business unit.
func (s *Schedule) MultiPosition(totalPositions int) bool {
	return totalPositions >= s.threshold
}

// RateFractionFor returns the rate fraction for a percentage-priced
// modality at the given total position count.
func (s *Schedule) RateFractionFor(modality types.Modality, totalPositions int) (decimal.Decimal, error) {
	fractions, ok := s.rates[modality]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeConfig, "no rate fractions configured for modality %s", modality)
	}
	if s.MultiPosition(totalPositions) {
		return fractions.Multi, nil
	}
	return fractions.Single, nil
}

// DiscountFor returns the discount fraction for an assessment at the
// given user count: the highest tier whose MinUsers <= userCount.
// With no matching tier the discount is zero.
func (s *Schedule) DiscountFor(assessment *types.Assessment, userCount int) decimal.Decimal {
	// tiers are stored ascending by MinUsers, scan from the top
	for i := len(assessment.Tiers) - 1; i >= 0; i-- {
		if assessment.Tiers[i].MinUsers <= userCount {
			return assessment.Tiers[i].Discount
		}
	}
	return decimal.Zero
}

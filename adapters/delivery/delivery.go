// Package delivery provides proposal delivery adapters.
// Delivery consumes a fully computed proposal; it never recomputes or
// mutates it, and a delivery failure never invalidates the proposal.
package delivery

import (
	"context"

	"go.uber.org/zap"

	"talent-quote/core/quote"
	"talent-quote/core/types"
	"talent-quote/internal/errors"
	"talent-quote/internal/logging"
)

// Sender delivers a proposal to a recipient
type Sender interface {
	// Send delivers the proposal; it must reject proposals that fail
	// the internal consistency check rather than sending bad numbers.
	Send(ctx context.Context, recipient string, proposal *types.Proposal) error
}

// LogSender is a reference Sender that writes to the log instead of a
// mail transport. Real transports implement the same interface.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-backed sender
func NewLogSender() *LogSender {
	return &LogSender{logger: logging.Named("delivery")}
}

// Send verifies and "delivers" the proposal
func (s *LogSender) Send(ctx context.Context, recipient string, proposal *types.Proposal) error {
	if recipient == "" {
		return errors.New(errors.TypeInvalidSelection, "recipient is empty")
	}
	if err := quote.Verify(proposal); err != nil {
		return err
	}

	s.logger.Info("proposal delivered",
		zap.String("recipient", recipient),
		zap.String("total", proposal.TotalAmount.StringFixed(2)),
		zap.String("currency", proposal.Currency.String()),
		zap.Int("modalities", len(proposal.Modalities)),
	)
	return nil
}

// Package tracking provides fire-and-forget proposal analytics.
// Tracking failures are isolated here and never block proposal
// computation or delivery.
package tracking

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-quote/core/types"
	"talent-quote/internal/logging"
)

// Event is a tracked proposal event
type Event struct {
	// ID uniquely identifies the event
	ID string `json:"id"`

	// Channel is the delivery or interaction channel
	Channel string `json:"channel"`

	// TotalAmount is the proposal total at event time
	TotalAmount string `json:"total_amount"`

	// Currency is the proposal currency
	Currency string `json:"currency"`

	// ModalityCount is the number of priced modalities
	ModalityCount int `json:"modality_count"`

	// Metadata carries caller-provided selection metadata
	Metadata map[string]string `json:"metadata,omitempty"`

	// At is the event timestamp
	At time.Time `json:"at"`
}

// Tracker records proposal events
type Tracker interface {
	// Track records an event; implementations must not propagate
	// failures to the caller.
	Track(proposal *types.Proposal, metadata map[string]string, channel string)
}

// LogTracker is a reference Tracker that writes events to the log
type LogTracker struct {
	logger *zap.Logger
}

// NewLogTracker creates a log-backed tracker
func NewLogTracker() *LogTracker {
	return &LogTracker{logger: logging.Named("tracking")}
}

// Track records the event asynchronously. The whole event path,
// including event construction, runs behind a recover so tracking can
// never take down a quote.
func (t *LogTracker) Track(proposal *types.Proposal, metadata map[string]string, channel string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.logger.Warn("tracking event dropped", zap.Any("panic", r))
			}
		}()

		event := Event{
			ID:            uuid.NewString(),
			Channel:       channel,
			TotalAmount:   proposal.TotalAmount.StringFixed(2),
			Currency:      proposal.Currency.String(),
			ModalityCount: len(proposal.Modalities),
			Metadata:      metadata,
			At:            time.Now().UTC(),
		}

		t.logger.Info("proposal event",
			zap.String("event_id", event.ID),
			zap.String("channel", event.Channel),
			zap.String("total", event.TotalAmount),
			zap.Int("modalities", event.ModalityCount),
		)
	}()
}

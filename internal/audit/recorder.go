package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/nfrund/goby-forms/internal/pubsub"
)

// Recorder tallies submission events received from the bus.
type Recorder struct {
	logger *slog.Logger

	mu     sync.RWMutex
	counts map[string]int64
}

// NewRecorder creates a Recorder. A nil logger means slog.Default().
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger,
		counts: make(map[string]int64),
	}
}

// Start subscribes the recorder to TopicSubmission.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	if err := sub.Subscribe(ctx, TopicSubmission, r.Handle); err != nil {
		return fmt.Errorf("subscribe to %s: %w", TopicSubmission, err)
	}
	return nil
}

// Handle processes one bus message.
func (r *Recorder) Handle(ctx context.Context, msg pubsub.Message) error {
	var ev SubmissionEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("decode submission event: %w", err)
	}

	r.mu.Lock()
	r.counts[ev.Key()]++
	r.mu.Unlock()

	r.logger.Debug("form submitted", "page", ev.Page, "handler", ev.Handler, "request_id", msg.RequestID)
	return nil
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.counts)
}

// Package audit publishes form submission events on the in-process bus and
// keeps running totals of them. Events never carry submitted field values.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nfrund/goby-forms/internal/pubsub"
)

// TopicSubmission is the bus topic submission events are published on.
const TopicSubmission = "forms.submission"

// SubmissionEvent records that a form was posted.
type SubmissionEvent struct {
	Page    string    `json:"page"`
	Handler string    `json:"handler"`
	At      time.Time `json:"at"`
}

// Key is the counter name for the event, e.g. "index.submit".
func (e SubmissionEvent) Key() string {
	return e.Page + "." + e.Handler
}

// PublishSubmission encodes ev and publishes it on TopicSubmission.
func PublishSubmission(ctx context.Context, pub pubsub.Publisher, requestID string, ev SubmissionEvent) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode submission event: %w", err)
	}
	return pub.Publish(ctx, pubsub.Message{
		Topic:     TopicSubmission,
		RequestID: requestID,
		Payload:   payload,
	})
}

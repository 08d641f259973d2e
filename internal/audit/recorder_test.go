package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-forms/internal/audit"
	"github.com/nfrund/goby-forms/internal/pubsub"
)

func TestRecorder_CountsPublishedSubmissions(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	rec := audit.NewRecorder(nil)
	require.NoError(t, rec.Start(ctx, bus))

	require.NoError(t, audit.PublishSubmission(ctx, bus, "r1", audit.SubmissionEvent{Page: "index", Handler: "submit"}))
	require.NoError(t, audit.PublishSubmission(ctx, bus, "r2", audit.SubmissionEvent{Page: "index", Handler: "submit"}))
	require.NoError(t, audit.PublishSubmission(ctx, bus, "r3", audit.SubmissionEvent{Page: "password", Handler: "submit"}))

	require.Eventually(t, func() bool {
		snap := rec.Snapshot()
		return snap["index.submit"] == 2 && snap["password.submit"] == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_Handle(t *testing.T) {
	rec := audit.NewRecorder(nil)

	err := rec.Handle(context.Background(), pubsub.Message{Payload: []byte("not json")})
	assert.ErrorContains(t, err, "decode submission event")
	assert.Empty(t, rec.Snapshot())

	require.NoError(t, rec.Handle(context.Background(), pubsub.Message{
		Payload: []byte(`{"page":"index","handler":"submit1"}`),
	}))
	snap := rec.Snapshot()
	assert.Equal(t, map[string]int64{"index.submit1": 1}, snap)

	// The snapshot is a copy.
	snap["index.submit1"] = 99
	assert.Equal(t, int64(1), rec.Snapshot()["index.submit1"])
}

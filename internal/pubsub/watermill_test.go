package pubsub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu       sync.Mutex
		received []Message
	)
	err := bridge.Subscribe(ctx, "forms.submission", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:     "forms.submission",
		RequestID: "req-123",
		Payload:   []byte(`{"page":"index"}`),
		Metadata:  map[string]string{"source": "test", metaKeyTopic: "spoofed"},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	got := received[0]
	mu.Unlock()

	assert.Equal(t, "forms.submission", got.Topic)
	assert.Equal(t, "req-123", got.RequestID)
	assert.JSONEq(t, `{"page":"index"}`, string(got.Payload))
	assert.Equal(t, map[string]string{"source": "test"}, got.Metadata)
}

func TestWatermillBridge_HandlerErrorDoesNotStopLoop(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })
	ctx := context.Background()

	var (
		mu    sync.Mutex
		calls int
	)
	require.NoError(t, bridge.Subscribe(ctx, "t", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("boom")
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, bridge.Publish(ctx, Message{Topic: "t"}))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 3
	}, time.Second, 10*time.Millisecond)
}

package forms_test

import (
	"net/url"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-forms/internal/forms"
)

type logEvent struct {
	Level string
	Msg   string
	Args  []any
}

// recordingLogger captures controller log calls for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	events []logEvent
}

func (r *recordingLogger) Info(msg string, args ...any) { r.add("info", msg, args) }
func (r *recordingLogger) Warn(msg string, args ...any) { r.add("warn", msg, args) }

func (r *recordingLogger) add(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, logEvent{Level: level, Msg: msg, Args: args})
}

func (r *recordingLogger) byLevel(level string) []logEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEvent
	for _, e := range r.events {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

var optCmp = cmp.AllowUnexported(forms.Optional[string]{})

func TestController_HandleGet(t *testing.T) {
	c := forms.NewController(&recordingLogger{})

	tests := []struct {
		name   string
		sender forms.Optional[string]
		want   forms.IndexViewModel
	}{
		{
			name:   "absent sender shows nothing",
			sender: forms.None[string](),
			want:   forms.IndexViewModel{},
		},
		{
			name:   "empty sender still counts as present",
			sender: forms.Some(""),
			want:   forms.IndexViewModel{SuccessMessage: forms.Some("Finished")},
		},
		{
			name:   "any sender value shows the message",
			sender: forms.Some("anything"),
			want:   forms.IndexViewModel{SuccessMessage: forms.Some("Finished")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.HandleGet(tt.sender)
			if diff := cmp.Diff(tt.want, got, optCmp); diff != "" {
				t.Fatalf("view model mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestController_HandleSubmit(t *testing.T) {
	c := forms.NewController(nil)

	want := forms.Redirect{
		Page:   forms.PageIndex,
		Params: url.Values{"sender": {"Whatever"}},
	}
	for i := 0; i < 3; i++ {
		got := c.HandleSubmit()
		if diff := cmp.Diff(forms.Response(want), got); diff != "" {
			t.Fatalf("redirect mismatch (-want +got):\n%s", diff)
		}
	}

	redirect, ok := c.HandleSubmit().(forms.Redirect)
	require.True(t, ok)
	assert.Equal(t, "/index?sender=Whatever", redirect.Location())
}

func TestController_HandleSubmitAlternate(t *testing.T) {
	c := forms.NewController(nil)

	res := c.HandleSubmitAlternate()
	_, isRedirect := res.(forms.Redirect)
	assert.False(t, isRedirect, "alternate submit must never redirect")

	render, ok := res.(forms.Render)
	require.True(t, ok)
	assert.Equal(t, forms.PageIndex, render.Page)
	if diff := cmp.Diff(forms.IndexViewModel{}, render.ViewModel, optCmp); diff != "" {
		t.Fatalf("view model mismatch (-want +got):\n%s", diff)
	}
}

func TestController_HandlePasswordSubmit(t *testing.T) {
	t.Run("blank inputs warn", func(t *testing.T) {
		for _, pw := range []forms.Optional[string]{
			forms.None[string](),
			forms.Some(""),
			forms.Some("   "),
			forms.Some("\t\n"),
		} {
			logger := &recordingLogger{}
			res := forms.NewController(logger).HandlePasswordSubmit(pw)

			warns := logger.byLevel("warn")
			require.Len(t, warns, 1)
			assert.Equal(t, "no password entered", warns[0].Msg)
			assert.Empty(t, warns[0].Args)
			assert.Empty(t, logger.byLevel("info"))
			assert.Equal(t, forms.Render{Page: forms.PagePassword}, res)
		}
	})

	t.Run("entered password is logged verbatim", func(t *testing.T) {
		logger := &recordingLogger{}
		res := forms.NewController(logger).HandlePasswordSubmit(forms.Some("secret"))

		infos := logger.byLevel("info")
		require.Len(t, infos, 1)
		assert.Equal(t, "password entered", infos[0].Msg)
		assert.Equal(t, []any{"password", "secret"}, infos[0].Args)
		assert.Empty(t, logger.byLevel("warn"))
		assert.Equal(t, forms.Render{Page: forms.PagePassword}, res)
	})

	t.Run("padded password is kept as entered", func(t *testing.T) {
		logger := &recordingLogger{}
		forms.NewController(logger).HandlePasswordSubmit(forms.Some(" s3cret "))

		infos := logger.byLevel("info")
		require.Len(t, infos, 1)
		assert.Equal(t, []any{"password", " s3cret "}, infos[0].Args)
	})
}

func TestController_WithLogger(t *testing.T) {
	base := &recordingLogger{}
	scoped := &recordingLogger{}
	c := forms.NewController(base)

	c.WithLogger(scoped).HandlePasswordSubmit(forms.Some("x"))

	assert.Empty(t, base.events)
	assert.Len(t, scoped.byLevel("info"), 1)
	assert.Same(t, c, c.WithLogger(nil))
}

func TestController_ConcurrentUse(t *testing.T) {
	logger := &recordingLogger{}
	c := forms.NewController(logger)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.HandlePasswordSubmit(forms.Some("secret"))
			} else {
				c.HandlePasswordSubmit(forms.None[string]())
			}
			vm := c.HandleGet(forms.Some("Whatever"))
			msg, ok := vm.SuccessMessage.Get()
			assert.True(t, ok)
			assert.Equal(t, forms.SuccessMessage, msg)
		}(i)
	}
	wg.Wait()

	assert.Len(t, logger.byLevel("info"), workers/2)
	assert.Len(t, logger.byLevel("warn"), workers/2)
}

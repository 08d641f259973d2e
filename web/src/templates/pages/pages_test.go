package pages_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/web/src/templates/pages"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestIndex(t *testing.T) {
	t.Run("without message", func(t *testing.T) {
		out := render(t, pages.Index(forms.IndexViewModel{}))
		assert.NotContains(t, out, "success-message")
		assert.Contains(t, out, `action="/index"`)
		assert.Contains(t, out, `value="submit"`)
		assert.Contains(t, out, `value="submit1"`)
	})

	t.Run("with message", func(t *testing.T) {
		out := render(t, pages.Index(forms.IndexViewModel{SuccessMessage: forms.Some("Finished")}))
		assert.Contains(t, out, `<p class="success-message" id="success-message">Finished</p>`)
	})
}

func TestPassword(t *testing.T) {
	out := render(t, pages.Password())
	assert.Contains(t, out, `action="/password"`)
	assert.Contains(t, out, `type="password"`)
	assert.Contains(t, out, `name="password"`)
}

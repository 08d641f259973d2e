package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/goby-forms/internal/view"
)

// Flash renders the one-shot session messages at the top of a page.
// It renders nothing when there are no messages.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return h.Div(
		h.Class("flashes"),
		g.Map(data.Error, func(msg string) g.Node { return flashMessage("error", msg) }),
	)
}

func flashMessage(kind, msg string) g.Node {
	return h.Div(
		h.Class("flash flash-"+kind),
		h.Role("alert"),
		g.Raw(view.SanitizeMessage(msg)),
	)
}

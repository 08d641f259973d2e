package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/goby-forms/internal/forms"
)

// Handler names posted with the index form. "submit1" mirrors the name the
// page has always used for the non-redirecting button.
const (
	HandlerSubmit          = "submit"
	HandlerSubmitAlternate = "submit1"
)

// Index is the show-message page body.
func Index(vm forms.IndexViewModel) g.Node {
	msg, ok := vm.SuccessMessage.Get()
	return h.Div(
		h.H1(g.Text("Show message on post")),
		g.If(ok, h.P(h.Class("success-message"), h.ID("success-message"), g.Text(msg))),
		h.Form(
			h.Method("post"),
			h.Action(forms.PageIndex.Path()),
			h.Button(
				h.Type("submit"), h.Name("handler"), h.Value(HandlerSubmit),
				g.Text("Submit"),
			),
			h.Button(
				h.Type("submit"), h.Name("handler"), h.Value(HandlerSubmitAlternate),
				h.Class("secondary"),
				g.Text("Submit without redirect"),
			),
		),
	)
}

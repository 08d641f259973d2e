package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/goby-forms/internal/forms"
)

// Password is the password page body. The field is never pre-filled.
func Password() g.Node {
	return h.Div(
		h.H1(g.Text("Password")),
		h.Form(
			h.Method("post"),
			h.Action(forms.PagePassword.Path()),
			h.Label(h.For("password"), g.Text("Password")),
			h.Input(h.Type("password"), h.ID("password"), h.Name("password"), g.Attr("autocomplete", "off")),
			h.Button(h.Type("submit"), g.Text("Save")),
		),
	)
}

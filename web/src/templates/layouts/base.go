package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/goby-forms/internal/view"
	"github.com/nfrund/goby-forms/web/src/templates/partials"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page carries what the base layout needs besides the page body.
type Page struct {
	Title   string
	AppName string
	Flashes view.FlashData
}

// Base wraps content in the full HTML document shared by every page.
func Base(page Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(page, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

func document(page Page, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(page.Title, page.AppName))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			// hx-boost turns links and forms into AJAX swaps; redirects are still followed.
			h.Body(
				hx.Boost("true"),
				h.Main(
					partials.Flash(page.Flashes),
					body,
				),
			),
		),
	)
}

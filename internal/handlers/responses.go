package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/rendering"
	"github.com/nfrund/goby-forms/internal/view"
	"github.com/nfrund/goby-forms/web/src/templates/layouts"
)

// PageFunc builds the page body for a Render response.
type PageFunc func(r forms.Render) (g.Node, error)

// Respond writes a controller response. Redirects become 303 See Other so the
// browser follows up with a GET; renders go through page and the base layout.
func Respond(c echo.Context, appName string, res forms.Response, page PageFunc) error {
	switch r := res.(type) {
	case forms.Redirect:
		return c.Redirect(http.StatusSeeOther, r.Location())
	case forms.Render:
		body, err := page(r)
		if err != nil {
			return err
		}
		return RenderPage(c, http.StatusOK, appName, string(r.Page), body)
	default:
		return fmt.Errorf("unknown response type %T", res)
	}
}

// RenderPage wraps body in the base layout, with the session's flash messages,
// and writes it through the UniversalRenderer installed on Echo. Any other
// renderer gets the component through c.Render.
func RenderPage(c echo.Context, status int, appName, title string, body g.Node) error {
	page := layouts.Page{
		Title:   title,
		AppName: appName,
		Flashes: view.GetFlashData(c),
	}
	finalComponent := layouts.Base(page, view.AdaptGomponentToTempl(body))
	if r, ok := c.Echo().Renderer.(*rendering.UniversalRenderer); ok {
		return r.RenderPage(c, status, finalComponent)
	}
	return c.Render(status, "", finalComponent)
}

// ViewModel extracts a typed view model from a Render, using the zero value
// when the render carries none.
func ViewModel[T any](r forms.Render) (T, error) {
	var zero T
	if r.ViewModel == nil {
		return zero, nil
	}
	vm, ok := r.ViewModel.(T)
	if !ok {
		return zero, fmt.Errorf("page %s: unexpected view model %T", r.Page, r.ViewModel)
	}
	return vm, nil
}

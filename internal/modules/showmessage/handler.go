package showmessage

import (
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/handlers"
	"github.com/nfrund/goby-forms/internal/pubsub"
	"github.com/nfrund/goby-forms/web/src/templates/pages"
)

// Handler serves the show-message page.
type Handler struct {
	controller *forms.Controller
	publisher  pubsub.Publisher
	appName    string
}

// NewHandler creates a new Handler. publisher may be nil.
func NewHandler(controller *forms.Controller, publisher pubsub.Publisher, appName string) *Handler {
	return &Handler{
		controller: controller,
		publisher:  publisher,
		appName:    appName,
	}
}

// Get renders the page, showing the success message when a sender token is present.
func (h *Handler) Get(c echo.Context) error {
	vm := h.controller.HandleGet(handlers.QueryOptional(c, forms.SenderParam))
	return handlers.Respond(c, h.appName, forms.Render{Page: forms.PageIndex, ViewModel: vm}, page)
}

// Post dispatches the form submission to the handler named in the request.
// "submit" (the default) redirects; "submit1" re-renders in place.
func (h *Handler) Post(c echo.Context) error {
	name := strings.ToLower(handlers.HandlerName(c, pages.HandlerSubmit))

	var res forms.Response
	switch name {
	case pages.HandlerSubmit:
		res = h.controller.HandleSubmit()
	case pages.HandlerSubmitAlternate, "alternate":
		name = pages.HandlerSubmitAlternate
		res = h.controller.HandleSubmitAlternate()
	default:
		return echo.ErrNotFound
	}

	handlers.PublishSubmission(c, h.publisher, forms.PageIndex, name)
	return handlers.Respond(c, h.appName, res, page)
}

func page(r forms.Render) (g.Node, error) {
	vm, err := handlers.ViewModel[forms.IndexViewModel](r)
	if err != nil {
		return nil, err
	}
	return pages.Index(vm), nil
}

package password

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/handlers"
	"github.com/nfrund/goby-forms/internal/middleware"
	"github.com/nfrund/goby-forms/internal/pubsub"
	"github.com/nfrund/goby-forms/web/src/templates/pages"
)

const fieldPassword = "password"

// Handler serves the password page.
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

// Get renders the empty password form.
func (h *Handler) Get(c echo.Context) error {
	return handlers.RenderPage(c, http.StatusOK, h.appName, string(forms.PagePassword), pages.Password())
}

// Post logs the submitted password through the request-scoped logger and
// re-renders the page. The response is the same whatever was entered.
func (h *Handler) Post(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	res := h.controller.WithLogger(logger).HandlePasswordSubmit(handlers.FormOptional(c, fieldPassword))

	handlers.PublishSubmission(c, h.publisher, forms.PagePassword, "submit")
	return handlers.Respond(c, h.appName, res, page)
}

func page(forms.Render) (g.Node, error) {
	return pages.Password(), nil
}

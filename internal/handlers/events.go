package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/goby-forms/internal/audit"
	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/middleware"
	"github.com/nfrund/goby-forms/internal/pubsub"
)

// PublishSubmission announces a form post on the bus. It is best-effort: a
// failure is logged and never changes the response. A nil publisher is a no-op.
func PublishSubmission(c echo.Context, pub pubsub.Publisher, page forms.PageID, handler string) {
	if pub == nil {
		return
	}
	ctx := c.Request().Context()
	reqID := c.Response().Header().Get(echo.HeaderXRequestID)

	ev := audit.SubmissionEvent{Page: string(page), Handler: handler}
	if err := audit.PublishSubmission(ctx, pub, reqID, ev); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish submission event", "page", page, "handler", handler, "error", err)
	}
}

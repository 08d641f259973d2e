// Package forms holds the post/redirect/get logic behind the form pages.
// Nothing here knows about HTTP; handlers translate the returned Response.
package forms

import (
	"log/slog"
	"net/url"
	"strings"
)

const (
	// SenderParam is the query parameter that carries the correlation token
	// across the redirect.
	SenderParam = "sender"
	// SenderToken is the value written by HandleSubmit.
	SenderToken = "Whatever"
	// SuccessMessage is shown once the redirect lands.
	SuccessMessage = "Finished"

	msgNoPassword      = "no password entered"
	msgPasswordEntered = "password entered"
)

// EventLogger is the logging capability the controller needs.
// *slog.Logger satisfies it.
type EventLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Controller implements the index and password page behavior.
// It holds no per-request state and is safe for concurrent use.
type Controller struct {
	logger EventLogger
}

// NewController creates a Controller. A nil logger falls back to slog.Default().
func NewController(logger EventLogger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{logger: logger}
}

// WithLogger returns a copy of the controller that logs to logger.
func (c *Controller) WithLogger(logger EventLogger) *Controller {
	if logger == nil {
		return c
	}
	return &Controller{logger: logger}
}

// HandleGet builds the index view model. Any present sender, the empty
// string included, surfaces the success message.
func (c *Controller) HandleGet(sender Optional[string]) IndexViewModel {
	if sender.IsPresent() {
		return IndexViewModel{SuccessMessage: Some(SuccessMessage)}
	}
	return IndexViewModel{}
}

// HandleSubmit redirects back to the index page with the sender token so a
// refresh after submitting does not post again.
func (c *Controller) HandleSubmit() Response {
	return Redirect{
		Page:   PageIndex,
		Params: url.Values{SenderParam: []string{SenderToken}},
	}
}

// HandleSubmitAlternate re-renders the index page without redirecting.
func (c *Controller) HandleSubmitAlternate() Response {
	return Render{Page: PageIndex, ViewModel: IndexViewModel{}}
}

// HandlePasswordSubmit logs the submitted password and re-renders the page.
func (c *Controller) HandlePasswordSubmit(password Optional[string]) Response {
	pw, ok := password.Get()
	if !ok || strings.TrimSpace(pw) == "" {
		c.logger.Warn(msgNoPassword)
	} else {
		c.logger.Info(msgPasswordEntered, "password", pw)
	}
	return Render{Page: PagePassword}
}

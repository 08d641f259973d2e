package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/goby-forms/internal/forms"
)

// handlerField names the posted value that selects a page's POST handler.
const handlerField = "handler"

// QueryOptional returns the first value of a query parameter, or absent when
// the parameter is not in the URL at all. "?sender=" yields a present "".
func QueryOptional(c echo.Context, name string) forms.Optional[string] {
	if values, ok := c.QueryParams()[name]; ok {
		return forms.Some(first(values))
	}
	return forms.None[string]()
}

// FormOptional returns the first value of a body field, or absent when the
// field was not posted. Query parameters are not consulted.
func FormOptional(c echo.Context, name string) forms.Optional[string] {
	if _, err := c.FormParams(); err != nil {
		return forms.None[string]()
	}
	if values, ok := c.Request().PostForm[name]; ok {
		return forms.Some(first(values))
	}
	return forms.None[string]()
}

// HandlerName returns the POST handler selected by the request, from the body
// field first and the query string second. fallback is used when neither is set.
func HandlerName(c echo.Context, fallback string) string {
	if name, ok := FormOptional(c, handlerField).Get(); ok && name != "" {
		return name
	}
	if name := c.QueryParam(handlerField); name != "" {
		return name
	}
	return fallback
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

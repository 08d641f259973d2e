package forms

import (
	"net/url"
)

// PageID identifies a page independent of how it is routed.
type PageID string

const (
	PageIndex    PageID = "index"
	PagePassword PageID = "password"
)

// Path returns the URL path the page is served under.
func (p PageID) Path() string {
	return "/" + string(p)
}

// Response is what a controller hands back to the transport layer.
// It is either a Redirect or a Render.
type Response interface {
	isResponse()
}

// Redirect asks the transport to send the client to Page with Params as the query string.
type Redirect struct {
	Page   PageID
	Params url.Values
}

// Location builds the redirect target, e.g. "/index?sender=Whatever".
func (r Redirect) Location() string {
	loc := r.Page.Path()
	if len(r.Params) > 0 {
		loc += "?" + r.Params.Encode()
	}
	return loc
}

// Render asks the transport to render Page with ViewModel.
type Render struct {
	Page      PageID
	ViewModel any
}

func (Redirect) isResponse() {}
func (Render) isResponse()   {}

// IndexViewModel is the data handed to the index page.
type IndexViewModel struct {
	SuccessMessage Optional[string]
}

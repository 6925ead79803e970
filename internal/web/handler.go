package web

import (
	"context"
	"io"
)

// Handler declares routes on a router.
//
//	type ListingHandler struct{ store listing.Store }
//
//	func (h *ListingHandler) Routes(r web.Router) {
//	    r.GET("/listings", h.index)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles one request. A returned error is passed to the
// app's ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error

// Component is anything that renders itself to a writer.
// templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Package htmx reads htmx request headers and answers with the matching
// response headers.
//
//	if htmx.IsPartial(r) {
//	    // render only the fragment named by htmx.Target(r)
//	}
package htmx

import "net/http"

// Request headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTarget  = "HX-Target"
	HeaderHXBoosted = "HX-Boosted"
)

// Response headers.
const (
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXPushURL  = "HX-Push-Url"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsPartial reports whether htmx asked for a fragment: an htmx request
// that is not a boosted full-page navigation.
func IsPartial(r *http.Request) bool {
	return IsHTMX(r) && r.Header.Get(HeaderHXBoosted) != "true"
}

// Target returns the id of the element htmx will swap, or "".
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

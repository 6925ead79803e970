package htmx

import "net/http"

// Redirect sends a 303 redirect, or HX-Redirect for htmx requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusSeeOther)
}

// RedirectWithStatus redirects with status. htmx follows redirects
// itself only through the HX-Redirect header on a 200 response.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, targetURL, status)
}

// Package htmx reads htmx request headers and writes htmx response headers.
package htmx

import (
	"net/http"
)

const (
	headerRequest     = "Hx-Request"
	headerTarget      = "Hx-Target"
	headerTrigger     = "Hx-Trigger"
	headerCurrentURL  = "Hx-Current-Url"
	headerRedirect    = "Hx-Redirect"
	headerRefresh     = "Hx-Refresh"
	headerPushURL     = "Hx-Push-Url"
	headerReplaceURL  = "Hx-Replace-Url"
	headerRetarget    = "Hx-Retarget"
	headerReswap      = "Hx-Reswap"
	headerRespTrigger = "Hx-Trigger"
)

// IsHxRequest reports whether the request was issued by htmx.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get(headerRequest) == "true"
}

// Target returns the id of the target element, if any.
func Target(r *http.Request) string {
	return r.Header.Get(headerTarget)
}

// Trigger returns the id of the element that triggered the request.
func Trigger(r *http.Request) string {
	return r.Header.Get(headerTrigger)
}

func CurrentUrl(r *http.Request) string {
	return r.Header.Get(headerCurrentURL)
}

// Redirect makes htmx do a client-side redirect. It does not set a status.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set(headerRedirect, url)
}

func Refresh(w http.ResponseWriter) {
	w.Header().Set(headerRefresh, "true")
}

func PushUrl(w http.ResponseWriter, url string) {
	w.Header().Set(headerPushURL, url)
}

func ReplaceUrl(w http.ResponseWriter, url string) {
	w.Header().Set(headerReplaceURL, url)
}

func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set(headerRetarget, selector)
}

func Reswap(w http.ResponseWriter, swap string) {
	w.Header().Set(headerReswap, swap)
}

// SetTrigger fires a client-side event once the response is swapped in.
func SetTrigger(w http.ResponseWriter, event string) {
	w.Header().Set(headerRespTrigger, event)
}

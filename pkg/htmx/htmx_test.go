package htmx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	require.False(t, IsHxRequest(r))

	r.Header.Set("HX-Request", "true")
	r.Header.Set("HX-Target", "events")
	r.Header.Set("HX-Trigger", "refresh")
	r.Header.Set("HX-Current-URL", "http://localhost/customer-portal/t")
	require.True(t, IsHxRequest(r))
	require.Equal(t, "events", Target(r))
	require.Equal(t, "refresh", Trigger(r))
	require.Equal(t, "http://localhost/customer-portal/t", CurrentUrl(r))
}

func TestResponseHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	Redirect(w, "/a")
	Retarget(w, "#b")
	Reswap(w, "outerHTML")
	SetTrigger(w, "events:loaded")

	require.Equal(t, "/a", w.Header().Get("HX-Redirect"))
	require.Equal(t, "#b", w.Header().Get("HX-Retarget"))
	require.Equal(t, "outerHTML", w.Header().Get("HX-Reswap"))
	require.Equal(t, "events:loaded", w.Header().Get("HX-Trigger"))
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/billing-portal/pkg/application"
)

func TestHTTPServer_NotFoundRunsMiddleware(t *testing.T) {
	app := application.New(&application.ApplicationOptions{})
	app.RegisterControllers(NewHealthController("test"))
	app.RegisterMiddleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Seen", "1")
			next.ServeHTTP(w, r)
		})
	})

	srv := NewHTTPServer(app, http.NotFoundHandler(), http.NotFoundHandler())
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-Seen"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok","version":"test"}`, rec.Body.String())
}

func TestHTTPServer_Gzip(t *testing.T) {
	srv := &HTTPServer{
		Controllers: []application.Controller{NewHealthController("v")},
		Middlewares: []mux.MiddlewareFunc{},
	}
	srv.NotFoundHandler = http.NotFoundHandler()
	srv.MethodNotAllowedHandler = http.NotFoundHandler()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

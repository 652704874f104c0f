package controllers

import (
	"net/http"

	"github.com/iota-uz/billing-portal/modules/portal/presentation/templates/pages/portal"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/middleware"
)

func handler404(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := portal.NotFound().Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the localized 404 page. It runs outside the router
// middleware, so it provides its own localizer and page context.
func NotFound(app application.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler := middleware.WithPageContext()(http.HandlerFunc(handler404))
		handler = middleware.ProvideLocalizer(app)(handler)
		handler.ServeHTTP(w, r)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

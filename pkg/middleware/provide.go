package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/constants"
)

// Provide puts a fixed value into every request context.
func Provide(k constants.ContextKey, v any) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := context.WithValue(r.Context(), k, v)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				params := &composables.Params{
					IP:        getRealIP(r, conf),
					UserAgent: r.UserAgent(),
					Request:   r,
					Writer:    w,
				}
				ctx := composables.WithParams(r.Context(), params)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// WithPortalToken copies the {token} route variable into the context so the
// API layer can forward it upstream. The token is never validated here.
func WithPortalToken() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := mux.Vars(r)["token"]
				if token == "" {
					http.NotFound(w, r)
					return
				}
				ctx := composables.WithPortalToken(r.Context(), token)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

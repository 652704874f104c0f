package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/billing-portal/modules/portal"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/configuration"
	pkgserver "github.com/iota-uz/billing-portal/pkg/server"
)

func newDefault(t *testing.T, conf *configuration.Configuration) http.Handler {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := application.New(&application.ApplicationOptions{Logger: logger})
	app.RegisterLocaleFiles(&portal.LocaleFiles)
	app.RegisterControllers(pkgserver.NewHealthController("test"))

	srv, err := Default(&DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	require.NoError(t, err)
	return srv.Router()
}

func TestDefault_NotFoundPage(t *testing.T) {
	h := newDefault(t, &configuration.Configuration{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "data-placeholder")
}

func TestDefault_Cors(t *testing.T) {
	h := newDefault(t, &configuration.Configuration{CorsAllowedOrigins: []string{"https://app.example.com"}})

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDefault_RateLimit(t *testing.T) {
	h := newDefault(t, &configuration.Configuration{
		RateLimit: configuration.RateLimitOptions{Enabled: true, GlobalRPS: 1, Storage: "memory"},
	})

	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestDefault_RedisFallsBackToMemory(t *testing.T) {
	h := newDefault(t, &configuration.Configuration{
		RateLimit: configuration.RateLimitOptions{Enabled: true, GlobalRPS: 5, Storage: "redis", RedisURL: "127.0.0.1:1"},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/intl"
)

func TestRateLimit_MemoryStore(t *testing.T) {
	mw := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 2,
		Store:             NewMemoryStore(),
		KeyFunc:           func(*http.Request) string { return "client" },
	})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(mr.Addr())
	require.NoError(t, err)

	mw := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 1,
		Store:             store,
		KeyFunc:           func(*http.Request) string { return "client" },
	})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	mw := RateLimit(RateLimitConfig{RequestsPerPeriod: 0})
	called := false
	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, called)
}

func TestWithPortalToken(t *testing.T) {
	r := mux.NewRouter()
	var got string
	r.Handle("/customer-portal/{token}", WithPortalToken()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = composables.UsePortalToken(r.Context())
	})))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customer-portal/tok_123", nil))
	require.Equal(t, "tok_123", got)
}

func TestUseLocale(t *testing.T) {
	supported := []language.Tag{language.English, language.French}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.5")
	require.Equal(t, "fr", baseOf(useLocale(r, language.English, supported)))

	r = httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	r.Header.Set("Accept-Language", "fr")
	require.Equal(t, "en", baseOf(useLocale(r, language.English, supported)))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "de")
	require.Equal(t, "en", baseOf(useLocale(r, language.English, supported)))
}

func TestProvideLocalizerAndPageContext(t *testing.T) {
	app := stubApp{}
	var locale language.Tag
	var hasPageCtx bool
	h := ProvideLocalizer(app)(WithPageContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		locale, _ = intl.UseLocale(r.Context())
		_, hasPageCtx = composables.TryUsePageCtx(r.Context())
	})))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "fr")
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "fr", baseOf(locale))
	require.True(t, hasPageCtx)
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

type stubApp struct{}

func (stubApp) Bundle() *i18n.Bundle { return i18n.NewBundle(language.English) }

func (stubApp) GetSupportedLanguages() []string { return []string{"en", "fr"} }

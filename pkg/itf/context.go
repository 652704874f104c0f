package itf

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/constants"
	"github.com/iota-uz/billing-portal/pkg/middleware"
	"github.com/iota-uz/billing-portal/pkg/server"
)

// TestContext provides a fluent API for building test environments
type TestContext struct {
	ctx         context.Context
	modules     []application.Module
	middlewares []mux.MiddlewareFunc
	notFound    func(application.Application) http.Handler
	token       string
}

// NewTestContext creates a new TestContext builder
func NewTestContext() *TestContext {
	return &TestContext{
		ctx:     context.Background(),
		modules: []application.Module{},
	}
}

// WithModules adds modules to the test context
func (tc *TestContext) WithModules(modules ...application.Module) *TestContext {
	tc.modules = append(tc.modules, modules...)
	return tc
}

// WithMiddleware appends middleware after the default request stack.
func (tc *TestContext) WithMiddleware(mws ...mux.MiddlewareFunc) *TestContext {
	tc.middlewares = append(tc.middlewares, mws...)
	return tc
}

// WithNotFound replaces the bare 404 handler of the router.
func (tc *TestContext) WithNotFound(h func(app application.Application) http.Handler) *TestContext {
	tc.notFound = h
	return tc
}

// WithPortalToken puts a portal token into the environment context, for
// service calls made outside of a request.
func (tc *TestContext) WithPortalToken(token string) *TestContext {
	tc.token = token
	return tc
}

// Build creates the test environment with all dependencies
func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app, err := SetupApplication(logger, tc.modules...)
	if err != nil {
		tb.Fatal(err)
	}
	app.RegisterMiddleware(
		middleware.WithLogger(logger, middleware.DefaultLoggerOptions()),
		middleware.Provide(constants.AppKey, app),
		middleware.RequestParams(),
	)
	app.RegisterMiddleware(tc.middlewares...)

	notFound := http.NotFoundHandler()
	if tc.notFound != nil {
		notFound = tc.notFound(app)
	}
	srv := server.NewHTTPServer(app, notFound, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	return &TestEnvironment{
		Ctx:     tc.buildContext(),
		App:     app,
		Handler: srv.Handler(),
	}
}

func (tc *TestContext) buildContext() context.Context {
	ctx := composables.WithParams(tc.ctx, DefaultParams())
	if tc.token != "" {
		ctx = composables.WithPortalToken(ctx, tc.token)
	}
	return ctx
}

// TestEnvironment contains all test dependencies
type TestEnvironment struct {
	Ctx     context.Context
	App     application.Application
	Handler http.Handler
}

// Service retrieves a service from the application
func (te *TestEnvironment) Service(service interface{}) interface{} {
	return te.App.Service(service)
}

// GetService is a generic helper that retrieves and casts a service
func GetService[T any](te *TestEnvironment) *T {
	var zero T
	service := te.App.Service(zero)
	if service == nil {
		return nil
	}
	return service.(*T)
}

// AssertNoError fails the test if err is not nil
func (te *TestEnvironment) AssertNoError(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

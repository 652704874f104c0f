package itf

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/billing-portal/modules"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/composables"
)

func DefaultParams() *composables.Params {
	return &composables.Params{
		IP:        "127.0.0.1",
		UserAgent: "itf",
		Request:   nil,
		Writer:    nil,
	}
}

func SetupApplication(logger *logrus.Logger, mods ...application.Module) (application.Application, error) {
	app := application.New(&application.ApplicationOptions{
		Bundle: application.LoadBundle(),
		Logger: logger,
	})
	if err := modules.Load(app, mods...); err != nil {
		return nil, err
	}
	return app, nil
}

// Request is a request under construction against the environment handler.
type Request struct {
	env    *TestEnvironment
	tb     testing.TB
	method string
	path   string
	query  url.Values
	header http.Header
	body   io.Reader
}

func (te *TestEnvironment) GET(tb testing.TB, path string) *Request {
	return te.newRequest(tb, http.MethodGet, path)
}

func (te *TestEnvironment) POST(tb testing.TB, path string) *Request {
	return te.newRequest(tb, http.MethodPost, path)
}

func (te *TestEnvironment) newRequest(tb testing.TB, method, path string) *Request {
	return &Request{
		env:    te,
		tb:     tb,
		method: method,
		path:   path,
		query:  url.Values{},
		header: http.Header{},
	}
}

func (r *Request) Query(key, value string) *Request {
	r.query.Set(key, value)
	return r
}

// QueryValues sets a repeated query parameter.
func (r *Request) QueryValues(key string, values ...string) *Request {
	r.query[key] = values
	return r
}

func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// HTMX marks the request as sent by htmx.
func (r *Request) HTMX() *Request {
	return r.Header("Hx-Request", "true")
}

func (r *Request) Form(values url.Values) *Request {
	r.body = strings.NewReader(values.Encode())
	return r.Header("Content-Type", "application/x-www-form-urlencoded")
}

func (r *Request) Do() *Response {
	r.tb.Helper()
	target := r.path
	if len(r.query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + r.query.Encode()
	}
	req := httptest.NewRequest(r.method, target, r.body)
	for k, v := range r.header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.env.Handler.ServeHTTP(rec, req)
	return &Response{tb: r.tb, Recorder: rec}
}

// Response wraps the recorded response with HTML helpers.
type Response struct {
	tb       testing.TB
	Recorder *httptest.ResponseRecorder
	doc      *goquery.Document
}

func (r *Response) Status() int {
	return r.Recorder.Code
}

func (r *Response) Header() http.Header {
	return r.Recorder.Header()
}

func (r *Response) Body() string {
	return r.Recorder.Body.String()
}

func (r *Response) Bytes() []byte {
	return r.Recorder.Body.Bytes()
}

// HTML parses the body once and returns the document.
func (r *Response) HTML() *goquery.Document {
	r.tb.Helper()
	if r.doc != nil {
		return r.doc
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Recorder.Body.Bytes()))
	if err != nil {
		r.tb.Fatalf("failed to parse response body: %v", err)
	}
	r.doc = doc
	return doc
}

// Find is a shortcut for HTML().Find.
func (r *Response) Find(selector string) *goquery.Selection {
	r.tb.Helper()
	return r.HTML().Find(selector)
}

func (r *Response) AssertStatus(code int) *Response {
	r.tb.Helper()
	if r.Recorder.Code != code {
		r.tb.Fatalf("expected status %d, got %d: %s", code, r.Recorder.Code, r.Body())
	}
	return r
}

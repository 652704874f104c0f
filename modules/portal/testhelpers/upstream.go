// Package testhelpers fakes the billing GraphQL API for portal tests.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/billing-portal/pkg/graphql"
)

const TokenHeader = "customer-portal-token"

type Request struct {
	OperationName string
	Variables     map[string]any
	Token         string
	Header        http.Header
}

// Response is what a handler answers. Errors become a GraphQL errors array.
type Response struct {
	Status int
	Data   any
	Errors []string
}

type Handler func(req Request) Response

// Upstream is an httptest GraphQL server dispatching on operationName.
// Unknown operations answer a GraphQL error.
type Upstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	requests []Request
}

func NewUpstream(t testing.TB) *Upstream {
	t.Helper()
	u := &Upstream{handlers: make(map[string]Handler)}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query         string         `json:"query"`
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req := Request{
			OperationName: body.OperationName,
			Variables:     body.Variables,
			Token:         r.Header.Get(TokenHeader),
			Header:        r.Header.Clone(),
		}

		u.mu.Lock()
		u.requests = append(u.requests, req)
		h, ok := u.handlers[body.OperationName]
		u.mu.Unlock()

		res := Response{Errors: []string{"unknown operation " + body.OperationName}}
		if ok {
			res = h(req)
		}
		writeResponse(t, w, res)
	}))
	t.Cleanup(u.Server.Close)
	return u
}

func writeResponse(t testing.TB, w http.ResponseWriter, res Response) {
	payload := map[string]any{"data": res.Data}
	if len(res.Errors) > 0 {
		errs := make([]map[string]any, 0, len(res.Errors))
		for _, msg := range res.Errors {
			errs = append(errs, map[string]any{
				"message":    msg,
				"extensions": map[string]any{"code": "internal_error"},
			})
		}
		payload["errors"] = errs
	}
	w.Header().Set("Content-Type", "application/json")
	if res.Status != 0 {
		w.WriteHeader(res.Status)
	}
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func (u *Upstream) On(operation string, h Handler) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.handlers[operation] = h
	return u
}

// Data answers operation with a fixed data payload.
func (u *Upstream) Data(operation string, data any) *Upstream {
	return u.On(operation, func(Request) Response { return Response{Data: data} })
}

// Fail answers operation with a GraphQL error.
func (u *Upstream) Fail(operation, message string) *Upstream {
	return u.On(operation, func(Request) Response { return Response{Errors: []string{message}} })
}

// Status answers operation with a bare HTTP status.
func (u *Upstream) Status(operation string, status int) *Upstream {
	return u.On(operation, func(Request) Response { return Response{Status: status} })
}

func (u *Upstream) Requests(operation string) []Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Request, 0)
	for _, r := range u.requests {
		if r.OperationName == operation {
			out = append(out, r)
		}
	}
	return out
}

func (u *Upstream) Calls(operation string) int {
	return len(u.Requests(operation))
}

func (u *Upstream) URL() string {
	return u.Server.URL
}

func (u *Upstream) Client(opts ...graphql.ClientOption) *graphql.Client {
	return graphql.NewClient(u.Server.URL, opts...)
}

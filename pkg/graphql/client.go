package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const maxErrorBody = 2048

var tracer = otel.Tracer("billing-portal-graphql")

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors"`
}

// Client posts operations to a single GraphQL endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	headers    http.Header
}

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.httpClient = &http.Client{Timeout: d}
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) ClientOption {
	return func(client *Client) {
		client.headers.Set(key, value)
	}
}

func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOption customizes a single outgoing request.
type RequestOption func(*http.Request)

func WithRequestHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		if value != "" {
			r.Header.Set(key, value)
		}
	}
}

// Do executes op with vars and decodes the "data" member into out (when out is non-nil).
func (c *Client) Do(ctx context.Context, op *Operation, vars map[string]any, out any, opts ...RequestOption) (err error) {
	if missing := op.missingVariables(vars); len(missing) > 0 {
		return errors.Errorf("graphql: %s: missing required variables %s", op.Name(), strings.Join(missing, ", "))
	}

	start := time.Now()
	ctx, span := tracer.Start(ctx, "graphql."+op.Name(), trace.WithAttributes(
		attribute.String("graphql.operation.name", op.Name()),
		attribute.Bool("graphql.operation.mutation", op.IsMutation()),
	))
	defer func() {
		result := resultLabel(err)
		requestsTotal.WithLabelValues(op.Name(), result).Inc()
		requestLatency.WithLabelValues(op.Name(), result).Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, result)
		}
		span.End()
	}()

	body, err := json.Marshal(request{
		Query:         op.Document(),
		OperationName: op.Name(),
		Variables:     vars,
	})
	if err != nil {
		return errors.Wrapf(err, "graphql: %s: encode request", op.Name())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "graphql: %s: build request", op.Name())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	for _, opt := range opts {
		opt(req)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "graphql: %s", op.Name())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "graphql: %s: read response", op.Name())
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	var decoded response
	decodeErr := json.Unmarshal(raw, &decoded)
	if decodeErr == nil && len(decoded.Errors) > 0 {
		return decoded.Errors
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return &HTTPError{Operation: op.Name(), StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if decodeErr != nil {
		return errors.Wrapf(decodeErr, "graphql: %s: decode response", op.Name())
	}
	if out == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return errors.Wrapf(err, "graphql: %s: decode data", op.Name())
	}
	return nil
}

func asErrors(err error, target *Errors) bool {
	return errors.As(err, target)
}

func asHTTPError(err error, target **HTTPError) bool {
	return errors.As(err, target)
}

package middleware

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/constants"
	"github.com/iota-uz/billing-portal/pkg/htmx"
)

const redacted = "[redacted]"

// LoggerOptions configures WithLogger. SecretPathPrefixes name path prefixes
// whose next segment is a credential, e.g. "/customer-portal/" followed by
// the portal token. SecretHeaders are logged as [redacted].
type LoggerOptions struct {
	SecretPathPrefixes []string
	SecretHeaders      []string

	// Repanic re-raises a recovered panic after it was logged, used by tests.
	Repanic bool
}

func DefaultLoggerOptions() LoggerOptions {
	return LoggerOptions{
		SecretPathPrefixes: []string{"/customer-portal/"},
		SecretHeaders:      []string{"Authorization", "Cookie", "Customer-Portal-Token"},
	}
}

// Redact replaces the segment that follows each secret prefix in s. It works
// on bare paths and on full URLs such as the Referer header.
func (o LoggerOptions) Redact(s string) string {
	for _, prefix := range o.SecretPathPrefixes {
		i := strings.Index(s, prefix)
		if i < 0 {
			continue
		}
		head, rest := s[:i+len(prefix)], s[i+len(prefix):]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			continue
		}
		s = head + redacted + rest[end:]
	}
	return s
}

func (o LoggerOptions) headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if len(values) == 0 {
			continue
		}
		out[key] = o.Redact(values[0])
	}
	for _, key := range o.SecretHeaders {
		if _, ok := out[http.CanonicalHeaderKey(key)]; ok {
			out[http.CanonicalHeaderKey(key)] = redacted
		}
	}
	return out
}

type statusWriter struct {
	http.ResponseWriter
	statusCode    int
	statusWritten bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.statusWritten {
		w.statusCode = code
		w.statusWritten = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.statusWritten {
		w.statusCode = http.StatusOK
		w.statusWritten = true
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the HTTP status code
func (w *statusWriter) Status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func (w *statusWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("underlying ResponseWriter does not implement http.Hijacker")
}

func getRealIP(r *http.Request, conf *configuration.Configuration) string {
	if len(r.Header.Get(conf.RealIPHeader)) > 0 {
		return r.Header.Get(conf.RealIPHeader)
	}
	return r.RemoteAddr
}

func getRequestID(r *http.Request, conf *configuration.Configuration) string {
	if len(r.Header.Get(conf.RequestIDHeader)) > 0 {
		return r.Header.Get(conf.RequestIDHeader)
	}
	return uuid.New().String()
}

var tracer = otel.Tracer("billing-portal-middleware")

// TracedMiddleware opens a child span named after the middleware that follows it.
func TracedMiddleware(name string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), "middleware."+name,
				trace.WithAttributes(attribute.String("middleware.name", name)),
			)
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLogger opens the request span, puts a request-scoped logger into the
// context, logs start and completion and turns handler panics into a 500.
// Portal tokens never reach the log fields or the span attributes.
func WithLogger(logger *logrus.Logger, opts LoggerOptions) mux.MiddlewareFunc {
	conf := configuration.Use()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				requestID := getRequestID(r, conf)
				path := opts.Redact(r.URL.Path)

				fieldsLogger := logger.WithFields(logrus.Fields{
					"request-id": requestID,
					"path":       path,
					"method":     r.Method,
				})

				fieldsLogger.WithFields(logrus.Fields{
					"timestamp":       start.UnixNano(),
					"host":            r.Host,
					"ip":              getRealIP(r, conf),
					"user-agent":      r.UserAgent(),
					"htmx":            htmx.IsHxRequest(r),
					"request-headers": opts.headers(r.Header),
				}).Info("request started")

				propagator := propagation.TraceContext{}
				ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

				ctx, span := tracer.Start(
					ctx,
					"http.request",
					trace.WithAttributes(
						attribute.String("http.method", r.Method),
						attribute.String("http.route", path),
						attribute.String("http.user_agent", r.UserAgent()),
						attribute.String("http.request_id", requestID),
						attribute.String("net.host.name", r.Host),
						attribute.String("net.peer.ip", getRealIP(r, conf)),
					),
				)
				defer span.End()

				ctx = context.WithValue(ctx, constants.RequestStart, start)
				ctx = context.WithValue(ctx, constants.RequestIDKey, requestID)

				propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

				if spanContext := span.SpanContext(); spanContext.HasTraceID() {
					traceID := spanContext.TraceID().String()
					w.Header().Set("X-Trace-Id", traceID)
					fieldsLogger = fieldsLogger.WithFields(logrus.Fields{
						"trace-id": traceID,
						"span-id":  spanContext.SpanID().String(),
					})
				}

				w.Header().Set("X-Request-Id", requestID)
				ctx = composables.WithLogger(ctx, fieldsLogger)

				sw := &statusWriter{ResponseWriter: w}

				defer func() {
					recovered := recover()
					if recovered == nil {
						return
					}
					fieldsLogger.WithFields(logrus.Fields{
						"panic":    recovered,
						"stack":    string(debug.Stack()),
						"status":   http.StatusInternalServerError,
						"duration": time.Since(start),
					}).Error("panic recovered in request handler")
					span.SetAttributes(attribute.Int("http.status_code", http.StatusInternalServerError))

					if !sw.statusWritten {
						if htmx.IsHxRequest(r) {
							// let the section swap in nothing instead of an error page
							htmx.Reswap(sw, "none")
						}
						http.Error(sw, "Internal Server Error", http.StatusInternalServerError)
					}
					if opts.Repanic {
						panic(recovered)
					}
				}()

				next.ServeHTTP(sw, r.WithContext(ctx))

				statusCode := sw.Status()
				duration := time.Since(start)
				fieldsLogger.WithFields(logrus.Fields{
					"duration":     duration,
					"completed":    true,
					"status-code":  statusCode,
					"status-class": statusCode / 100,
					"content-type": sw.Header().Get("Content-Type"),
				}).Info("request completed")

				span.SetAttributes(
					attribute.Int64("http.request_duration_ms", duration.Milliseconds()),
					attribute.Int("http.status_code", statusCode),
				)
			},
		)
	}
}

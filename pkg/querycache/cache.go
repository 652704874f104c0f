// Package querycache holds GraphQL query results between requests, the way a
// client-side data-fetching cache would: cache-first reads serve stored results
// until they expire, network-only reads always refetch and refresh the entry.
package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

type Policy int

const (
	CacheFirst Policy = iota
	NetworkOnly
)

func (p Policy) String() string {
	if p == NetworkOnly {
		return "network-only"
	}
	return "cache-first"
}

var cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Subsystem: "query_cache",
	Name:      "requests_total",
	Help:      "Query cache lookups broken down by operation and result (hit, miss, bypass, error).",
}, []string{"operation", "result"})

// Store is the byte-level backend behind a Cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Options struct {
	TTL    time.Duration
	Prefix string
	Logger *logrus.Logger
}

type Cache struct {
	store  Store
	ttl    time.Duration
	prefix string
	logger *logrus.Logger
}

func New(store Store, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.Prefix == "" {
		opts.Prefix = "portal:query"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Cache{
		store:  store,
		ttl:    opts.TTL,
		prefix: opts.Prefix,
		logger: opts.Logger,
	}
}

// Key identifies one operation call for one portal token.
type Key struct {
	Operation string
	Variables map[string]any
	Token     string
}

func (c *Cache) scope(token string) string {
	sum := sha256.Sum256([]byte(token))
	return c.prefix + ":" + hex.EncodeToString(sum[:12]) + ":"
}

func (c *Cache) key(k Key) string {
	var b strings.Builder
	b.WriteString(c.scope(k.Token))
	b.WriteString(k.Operation)
	if len(k.Variables) == 0 {
		return b.String()
	}
	names := make([]string, 0, len(k.Variables))
	for name := range k.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	h := sha256.New()
	for _, name := range names {
		raw, _ := json.Marshal(k.Variables[name])
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write(raw)
		h.Write([]byte{0})
	}
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(h.Sum(nil)[:12]))
	return b.String()
}

// Invalidate drops every entry stored for token.
func (c *Cache) Invalidate(ctx context.Context, token string) error {
	return c.store.DeletePrefix(ctx, c.scope(token))
}

// Fetch resolves k through the cache according to policy. Store failures are
// logged and fall through to fetch; they never fail the call.
func Fetch[T any](ctx context.Context, c *Cache, policy Policy, k Key, fetch func(context.Context) (T, error)) (T, error) {
	key := c.key(k)
	log := c.logger.WithFields(logrus.Fields{"operation": k.Operation, "policy": policy.String()})

	if policy == CacheFirst {
		raw, ok, err := c.store.Get(ctx, key)
		switch {
		case err != nil:
			cacheRequests.WithLabelValues(k.Operation, "error").Inc()
			log.WithError(err).Warn("query cache read failed")
		case ok:
			var cached T
			if err := json.Unmarshal(raw, &cached); err == nil {
				cacheRequests.WithLabelValues(k.Operation, "hit").Inc()
				return cached, nil
			}
			cacheRequests.WithLabelValues(k.Operation, "error").Inc()
			log.Warn("query cache entry undecodable, refetching")
		default:
			cacheRequests.WithLabelValues(k.Operation, "miss").Inc()
		}
	} else {
		cacheRequests.WithLabelValues(k.Operation, "bypass").Inc()
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(errors.Wrap(err, "encode")).Warn("query cache write skipped")
		return value, nil
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		log.WithError(err).Warn("query cache write failed")
	}
	return value, nil
}

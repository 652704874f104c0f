// Package api implements the portal repositories over the billing GraphQL API.
package api

import (
	"context"

	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/graphql"
	"github.com/iota-uz/billing-portal/pkg/querycache"
)

const DefaultTokenHeader = "customer-portal-token"

type ClientOptions struct {
	GraphQL *graphql.Client
	// Cache is optional, without it every query goes to the network.
	Cache       *querycache.Cache
	TokenHeader string
}

// Client sends operations on behalf of the portal token found in the request context.
type Client struct {
	gql         *graphql.Client
	cache       *querycache.Cache
	tokenHeader string
}

func NewClient(opts ClientOptions) *Client {
	header := opts.TokenHeader
	if header == "" {
		header = DefaultTokenHeader
	}
	return &Client{
		gql:         opts.GraphQL,
		cache:       opts.Cache,
		tokenHeader: header,
	}
}

func query[T any](ctx context.Context, c *Client, policy querycache.Policy, op *graphql.Operation, vars map[string]any) (T, error) {
	token, err := composables.UsePortalToken(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	fetch := func(ctx context.Context) (T, error) {
		var out T
		err := c.gql.Do(ctx, op, vars, &out, graphql.WithRequestHeader(c.tokenHeader, token))
		return out, err
	}
	if c.cache == nil {
		return fetch(ctx)
	}
	return querycache.Fetch(ctx, c.cache, policy, querycache.Key{
		Operation: op.Name(),
		Variables: vars,
		Token:     token,
	}, fetch)
}

// mutate is never cached. The portal token is forwarded when present so the
// same path serves API key callers like portalctl.
func mutate[T any](ctx context.Context, c *Client, op *graphql.Operation, vars map[string]any) (T, error) {
	token, _ := composables.UsePortalToken(ctx)
	var out T
	err := c.gql.Do(ctx, op, vars, &out, graphql.WithRequestHeader(c.tokenHeader, token))
	return out, err
}

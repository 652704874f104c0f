package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/querycache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the shared query cache",
	}
	cmd.AddCommand(newCacheFlushCmd())
	return cmd
}

func newCacheFlushCmd() *cobra.Command {
	var (
		redisURL string
		prefix   string
		token    string
	)

	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Drop every cached query of one portal token from the redis cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisURL == "" || prefix == "" {
				conf := configuration.Use()
				if redisURL == "" {
					redisURL = conf.RedisURL
				}
				if prefix == "" {
					prefix = conf.QueryCache.Prefix
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			store, err := querycache.NewRedisStore(ctx, redisURL)
			if err != nil {
				return err
			}
			defer store.Close()

			cache := querycache.New(store, querycache.Options{Prefix: prefix})
			if err := cache.Invalidate(ctx, token); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "flushed")
			return err
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis address (defaults to REDIS_URL)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Cache key prefix (defaults to QUERY_CACHE_PREFIX)")
	cmd.Flags().StringVar(&token, "token", "", "Portal token (required)")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

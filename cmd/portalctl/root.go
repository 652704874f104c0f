package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/graphql"
)

type apiFlags struct {
	url     string
	key     string
	timeout time.Duration
}

// resolve fills unset flags from the environment configuration.
func (f *apiFlags) resolve() {
	if f.url != "" && f.key != "" {
		return
	}
	conf := configuration.Use()
	if f.url == "" {
		f.url = conf.API.URL
	}
	if f.key == "" {
		f.key = conf.API.Key
	}
	if f.timeout <= 0 {
		f.timeout = conf.API.Timeout
	}
}

func (f *apiFlags) client() *graphql.Client {
	f.resolve()
	opts := []graphql.ClientOption{graphql.WithTimeout(f.timeout)}
	if f.key != "" {
		opts = append(opts, graphql.WithHeader("Authorization", "Bearer "+f.key))
	}
	return graphql.NewClient(f.url, opts...)
}

func newRootCmd() *cobra.Command {
	flags := &apiFlags{}
	cmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Customer portal administration tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&flags.url, "api-url", "", "GraphQL endpoint (defaults to API_URL)")
	cmd.PersistentFlags().StringVar(&flags.key, "api-key", "", "API key sent as a bearer token (defaults to API_KEY)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 10*time.Second, "Request timeout")
	cmd.AddCommand(newURLCmd(flags), newCacheCmd())
	return cmd
}

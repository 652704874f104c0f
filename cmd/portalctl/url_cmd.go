package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iota-uz/billing-portal/modules/portal/infrastructure/api"
	"github.com/iota-uz/billing-portal/modules/portal/services"
)

type urlOutput struct {
	CustomerID string `json:"customer_id"`
	URL        string `json:"url"`
}

func newURLCmd(flags *apiFlags) *cobra.Command {
	var (
		customerID string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Generate the customer portal URL of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(api.ClientOptions{GraphQL: flags.client()})
			svc := services.NewCustomerService(api.NewCustomerRepository(client))

			url, err := svc.PortalURL(cmd.Context(), customerID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(urlOutput{CustomerID: customerID, URL: url})
			}
			_, err = fmt.Fprintln(out, url)
			return err
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the bare URL")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

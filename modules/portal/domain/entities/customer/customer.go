package customer

import (
	"context"
	"strings"

	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type Customer struct {
	ID                      string
	Name                    string
	LegalName               string
	LegalNumber             string
	TaxIdentificationNumber string
	Email                   string
	PaymentProvider         string
	AddressLine1            string
	AddressLine2            string
	State                   string
	Country                 string
	City                    string
	Zipcode                 string
	Currency                string
	ApplicableTimezone      timezone.Enum
}

// AddressLines returns the non-empty lines of the postal address in display order.
func (c Customer) AddressLines() []string {
	cityLine := strings.TrimSpace(strings.Join(nonEmpty(c.Zipcode, c.City), " "))
	lines := nonEmpty(c.AddressLine1, c.AddressLine2, cityLine, c.State, c.Country)
	return lines
}

// DisplayName prefers the legal name used on invoices.
func (c Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.LegalName
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type Repository interface {
	// Current returns the customer the portal token was issued for.
	Current(ctx context.Context) (Customer, error)
	// Timezone returns the customer's applicable timezone.
	Timezone(ctx context.Context, id string) (timezone.Enum, error)
	// PortalURL issues a new portal URL for the customer. Requires API key auth.
	PortalURL(ctx context.Context, id string) (string, error)
}

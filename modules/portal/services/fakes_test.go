package services

import (
	"context"
	"errors"
	"sync"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/customer"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/event"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/invoice"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/organization"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/subscription"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/usage"
	"github.com/iota-uz/billing-portal/modules/portal/domain/pagination"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

var errUpstream = errors.New("upstream down")

type fakeOrganizations struct {
	org organization.Organization
	err error
}

func (f *fakeOrganizations) Current(context.Context) (organization.Organization, error) {
	return f.org, f.err
}

type fakeCustomers struct {
	customer customer.Customer
	err      error
	tz       timezone.Enum
	tzErr    error
}

func (f *fakeCustomers) Current(context.Context) (customer.Customer, error) {
	return f.customer, f.err
}

func (f *fakeCustomers) Timezone(context.Context, string) (timezone.Enum, error) {
	return f.tz, f.tzErr
}

func (f *fakeCustomers) PortalURL(_ context.Context, id string) (string, error) {
	return "https://portal.test/" + id, nil
}

type fakeSubscriptions struct {
	subs []subscription.Subscription
	err  error
}

func (f *fakeSubscriptions) ForUsage(context.Context, string) ([]subscription.Subscription, error) {
	return f.subs, f.err
}

type fakeUsage struct {
	mu     sync.Mutex
	failOn map[string]bool
	calls  []string
}

func (f *fakeUsage) Current(_ context.Context, _ string, subscriptionID string) (usage.CustomerUsage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, subscriptionID)
	f.mu.Unlock()
	if f.failOn[subscriptionID] {
		return usage.CustomerUsage{}, errUpstream
	}
	return usage.CustomerUsage{Currency: "EUR", TotalAmountCents: 100}, nil
}

type fakeInvoices struct {
	totalPages int
	requested  []invoice.FindParams
}

func (f *fakeInvoices) List(_ context.Context, params invoice.FindParams) (invoice.Page, error) {
	f.requested = append(f.requested, params)
	return invoice.Page{
		Collection: []invoice.Invoice{{
			ID:               "inv",
			Number:           "N-1",
			IssuingDate:      "2024-03-04",
			InvoiceType:      "subscription",
			Status:           invoice.StatusFinalized,
			PaymentStatus:    invoice.PaymentSucceeded,
			Currency:         "USD",
			TotalAmountCents: 1999,
		}},
		Metadata: pagination.Metadata{CurrentPage: params.Page, TotalPages: f.totalPages},
	}, nil
}

func (f *fakeInvoices) DownloadURL(_ context.Context, id string) (string, error) {
	if id == "" {
		return "", errUpstream
	}
	return "https://files.test/" + id, nil
}

type fakeEvents struct {
	page event.Page
	got  event.FindParams
}

func (f *fakeEvents) List(_ context.Context, params event.FindParams) (event.Page, error) {
	f.got = params
	return f.page, nil
}

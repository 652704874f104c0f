package api

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/customer"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/event"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/invoice"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/organization"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/subscription"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/usage"
	"github.com/iota-uz/billing-portal/pkg/querycache"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

// ErrEmptyResponse is returned when the API answers without the requested object.
var ErrEmptyResponse = errors.New("empty response")

type OrganizationRepository struct {
	client *Client
}

func NewOrganizationRepository(client *Client) organization.Repository {
	return &OrganizationRepository{client: client}
}

func (r *OrganizationRepository) Current(ctx context.Context) (organization.Organization, error) {
	res, err := query[orgaInfosResponse](ctx, r.client, querycache.CacheFirst, getPortalOrgaInfos, nil)
	if err != nil {
		return organization.Organization{}, err
	}
	if res.CustomerPortalOrganization == nil {
		return organization.Organization{}, ErrEmptyResponse
	}
	return toDomainOrganization(res.CustomerPortalOrganization), nil
}

type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) customer.Repository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) Current(ctx context.Context) (customer.Customer, error) {
	res, err := query[customerInfosResponse](ctx, r.client, querycache.CacheFirst, getPortalCustomerInfos, nil)
	if err != nil {
		return customer.Customer{}, err
	}
	if res.CustomerPortalUser == nil {
		return customer.Customer{}, ErrEmptyResponse
	}
	return toDomainCustomer(res.CustomerPortalUser), nil
}

func (r *CustomerRepository) Timezone(ctx context.Context, id string) (timezone.Enum, error) {
	res, err := query[getCustomerResponse](ctx, r.client, querycache.CacheFirst, getCustomer, map[string]any{"id": id})
	if err != nil {
		return "", err
	}
	if res.Customer == nil {
		return "", ErrEmptyResponse
	}
	return timezone.Enum(res.Customer.ApplicableTimezone), nil
}

func (r *CustomerRepository) PortalURL(ctx context.Context, id string) (string, error) {
	res, err := mutate[generatePortalURLResponse](ctx, r.client, generateCustomerPortalURL, map[string]any{
		"input": map[string]any{"id": id},
	})
	if err != nil {
		return "", err
	}
	if res.GenerateCustomerPortalURL == nil || res.GenerateCustomerPortalURL.URL == "" {
		return "", ErrEmptyResponse
	}
	return res.GenerateCustomerPortalURL.URL, nil
}

type SubscriptionRepository struct {
	client *Client
}

func NewSubscriptionRepository(client *Client) subscription.Repository {
	return &SubscriptionRepository{client: client}
}

func (r *SubscriptionRepository) ForUsage(ctx context.Context, customerID string) ([]subscription.Subscription, error) {
	res, err := query[subscriptionsForUsageResponse](ctx, r.client, querycache.CacheFirst, getCustomerSubscriptionForUsage, map[string]any{"id": customerID})
	if err != nil {
		return nil, err
	}
	if res.Customer == nil {
		return nil, ErrEmptyResponse
	}
	subs := make([]subscription.Subscription, 0, len(res.Customer.Subscriptions))
	for _, dto := range res.Customer.Subscriptions {
		subs = append(subs, toDomainSubscription(dto))
	}
	return subs, nil
}

type UsageRepository struct {
	client *Client
}

func NewUsageRepository(client *Client) usage.Repository {
	return &UsageRepository{client: client}
}

// Current usage changes with every ingested event, so it is always fetched.
func (r *UsageRepository) Current(ctx context.Context, customerID, subscriptionID string) (usage.CustomerUsage, error) {
	res, err := query[customerUsageResponse](ctx, r.client, querycache.NetworkOnly, getCustomerUsage, map[string]any{
		"customerId":     customerID,
		"subscriptionId": subscriptionID,
	})
	if err != nil {
		return usage.CustomerUsage{}, err
	}
	if res.CustomerUsage == nil {
		return usage.CustomerUsage{}, ErrEmptyResponse
	}
	return toDomainUsage(res.CustomerUsage), nil
}

type InvoiceRepository struct {
	client *Client
}

func NewInvoiceRepository(client *Client) invoice.Repository {
	return &InvoiceRepository{client: client}
}

func (r *InvoiceRepository) List(ctx context.Context, params invoice.FindParams) (invoice.Page, error) {
	vars := map[string]any{
		"page":  params.Page,
		"limit": params.Limit,
	}
	if params.Search != "" {
		vars["searchTerm"] = params.Search
	}
	res, err := query[invoicesResponse](ctx, r.client, querycache.CacheFirst, customerPortalInvoices, vars)
	if err != nil {
		return invoice.Page{}, err
	}
	if res.CustomerPortalInvoices == nil {
		return invoice.Page{}, ErrEmptyResponse
	}
	page := invoice.Page{
		Collection: make([]invoice.Invoice, 0, len(res.CustomerPortalInvoices.Collection)),
		Metadata:   toDomainMetadata(res.CustomerPortalInvoices.Metadata),
	}
	for _, dto := range res.CustomerPortalInvoices.Collection {
		page.Collection = append(page.Collection, toDomainInvoice(dto))
	}
	return page, nil
}

func (r *InvoiceRepository) DownloadURL(ctx context.Context, id string) (string, error) {
	res, err := mutate[downloadInvoiceResponse](ctx, r.client, downloadCustomerPortalInvoice, map[string]any{
		"input": map[string]any{"id": id},
	})
	if err != nil {
		return "", err
	}
	if res.DownloadCustomerPortalInvoice == nil || res.DownloadCustomerPortalInvoice.FileURL == "" {
		return "", ErrEmptyResponse
	}
	return res.DownloadCustomerPortalInvoice.FileURL, nil
}

type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) event.Repository {
	return &EventRepository{client: client}
}

// List always reads from the network. Events arrive continuously, so a cached
// page would be out of step with the pages fetched around it.
func (r *EventRepository) List(ctx context.Context, params event.FindParams) (event.Page, error) {
	res, err := query[eventsResponse](ctx, r.client, querycache.NetworkOnly, customerPortalEvents, map[string]any{
		"page":  params.Page,
		"limit": params.Limit,
	})
	if err != nil {
		return event.Page{}, err
	}
	if res.CustomerPortalEvents == nil {
		return event.Page{}, ErrEmptyResponse
	}
	page := event.Page{
		Collection: make([]event.Event, 0, len(res.CustomerPortalEvents.Collection)),
		Metadata:   toDomainMetadata(res.CustomerPortalEvents.Metadata),
	}
	for _, dto := range res.CustomerPortalEvents.Collection {
		page.Collection = append(page.Collection, toDomainEvent(dto))
	}
	return page, nil
}

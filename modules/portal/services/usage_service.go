package services

import (
	"context"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/subscription"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/usage"
	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type UsageItem struct {
	Subscription subscription.Subscription
	// Usage is nil when Err is set.
	Usage *usage.CustomerUsage
	Err   error
}

type UsageSection struct {
	CustomerID string
	Timezone   timezone.Enum
	Items      []UsageItem
}

// Empty is true when there is no active subscription to show.
func (s UsageSection) Empty() bool {
	return len(s.Items) == 0
}

type UsageServiceConfig struct {
	Customers     *CustomerService
	Subscriptions subscription.Repository
	Usage         usage.Repository
	Concurrency   int
}

type UsageService struct {
	customers     *CustomerService
	subscriptions subscription.Repository
	usage         usage.Repository
	concurrency   int
}

func NewUsageService(cfg UsageServiceConfig) *UsageService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &UsageService{
		customers:     cfg.Customers,
		subscriptions: cfg.Subscriptions,
		usage:         cfg.Usage,
		concurrency:   cfg.Concurrency,
	}
}

// Section resolves portal user, customer timezone and active subscriptions,
// then fetches each subscription's usage concurrently. A failing usage fetch
// only marks its own item.
func (s *UsageService) Section(ctx context.Context) (UsageSection, error) {
	c, err := s.customers.Infos(ctx)
	if err != nil {
		return UsageSection{}, err
	}
	tz, err := s.customers.Timezone(ctx, c.ID)
	if err != nil {
		return UsageSection{}, err
	}
	subs, err := s.subscriptions.ForUsage(ctx, c.ID)
	if err != nil {
		return UsageSection{}, errors.Wrap(err, "list subscriptions for usage")
	}

	active := subscription.Active(subs)
	section := UsageSection{
		CustomerID: c.ID,
		Timezone:   tz,
		Items:      make([]UsageItem, len(active)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, sub := range active {
		section.Items[i].Subscription = sub
		g.Go(func() error {
			u, err := s.usage.Current(gctx, c.ID, sub.ID)
			if err != nil {
				composables.UseLogger(ctx).WithError(err).WithField("subscription-id", sub.ID).Warn("failed to fetch subscription usage")
				section.Items[i].Err = err
				return nil
			}
			section.Items[i].Usage = &u
			return nil
		})
	}
	_ = g.Wait()
	return section, nil
}

package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/customer"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type CustomerService struct {
	repo customer.Repository
}

func NewCustomerService(repo customer.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Infos(ctx context.Context) (customer.Customer, error) {
	c, err := s.repo.Current(ctx)
	if err != nil {
		return customer.Customer{}, errors.Wrap(err, "get portal customer")
	}
	return c, nil
}

// Timezone returns the customer's applicable timezone. UTC is returned with
// the error when it cannot be fetched, and when the customer has none.
func (s *CustomerService) Timezone(ctx context.Context, id string) (timezone.Enum, error) {
	tz, err := s.repo.Timezone(ctx, id)
	if err != nil {
		return timezone.UTC, errors.Wrap(err, "get customer timezone")
	}
	if tz == "" {
		return timezone.UTC, nil
	}
	return tz, nil
}

func (s *CustomerService) PortalURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", errors.New("customer id is required")
	}
	url, err := s.repo.PortalURL(ctx, id)
	if err != nil {
		return "", errors.Wrap(err, "generate portal url")
	}
	return url, nil
}

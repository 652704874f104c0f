package services

import (
	"context"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/organization"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

// OrganizationInfos is what every section needs to know about the organization.
type OrganizationInfos struct {
	// Organization is nil when it could not be fetched.
	Organization *organization.Organization
	Timezone     timezone.Enum
	Formatter    timezone.Formatter
}

type OrganizationService struct {
	repo organization.Repository
}

func NewOrganizationService(repo organization.Repository) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// Infos always returns usable infos. On error they carry a UTC formatter and
// no organization, and the error is returned alongside for logging.
func (s *OrganizationService) Infos(ctx context.Context) (OrganizationInfos, error) {
	org, err := s.repo.Current(ctx)
	if err != nil {
		return OrganizationInfos{
			Timezone:  timezone.UTC,
			Formatter: timezone.NewFormatter(timezone.UTC),
		}, err
	}
	tz := org.SafeTimezone()
	return OrganizationInfos{
		Organization: &org,
		Timezone:     tz,
		Formatter:    timezone.NewFormatter(tz),
	}, nil
}

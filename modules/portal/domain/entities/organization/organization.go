package organization

import (
	"context"

	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type Organization struct {
	ID       string
	Name     string
	LogoURL  string
	Timezone timezone.Enum
}

// SafeTimezone falls back to UTC when the organization has no timezone set.
func (o Organization) SafeTimezone() timezone.Enum {
	if o.Timezone == "" {
		return timezone.UTC
	}
	return o.Timezone
}

type Repository interface {
	// Current returns the organization the portal token belongs to.
	Current(ctx context.Context) (Organization, error)
}

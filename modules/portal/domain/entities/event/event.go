package event

import (
	"context"
	"encoding/json"

	"github.com/iota-uz/billing-portal/modules/portal/domain/pagination"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type Event struct {
	ID                     string
	Code                   string
	ExternalCustomerID     string
	TransactionID          string
	Timestamp              string
	ReceivedAt             string
	Payload                json.RawMessage
	BillableMetricName     string
	MatchBillableMetric    bool
	MatchCustomField       bool
	APIClient              string
	IPAddress              string
	ExternalSubscriptionID string
	CustomerTimezone       timezone.Enum
}

// HasWarning is true when the event did not match a metric or a custom field.
func (e Event) HasWarning() bool {
	return !e.MatchBillableMetric || !e.MatchCustomField
}

type Page struct {
	Collection []Event
	Metadata   pagination.Metadata
}

type FindParams struct {
	Page  int
	Limit int
}

type Repository interface {
	List(ctx context.Context, params FindParams) (Page, error)
}

package subscription

import (
	"context"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusPending    Status = "pending"
	StatusTerminated Status = "terminated"
	StatusCanceled   Status = "canceled"
)

type Plan struct {
	ID   string
	Name string
	Code string
}

type Subscription struct {
	ID     string
	Name   string
	Status Status
	Plan   Plan
}

// DisplayName falls back to the plan name for unnamed subscriptions.
func (s Subscription) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Plan.Name
}

// Active keeps active subscriptions in their original order.
func Active(subs []Subscription) []Subscription {
	out := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Status == StatusActive {
			out = append(out, s)
		}
	}
	return out
}

type Repository interface {
	// ForUsage lists the customer's active and pending subscriptions.
	ForUsage(ctx context.Context, customerID string) ([]Subscription, error)
}

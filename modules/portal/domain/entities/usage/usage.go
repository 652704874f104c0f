package usage

import (
	"context"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

type BillableMetric struct {
	ID              string
	Code            string
	Name            string
	AggregationType string
}

type ChargeUsage struct {
	Units          decimal.Decimal
	AmountCents    int64
	BillableMetric BillableMetric
}

type CustomerUsage struct {
	FromDatetime     string
	ToDatetime       string
	Currency         string
	AmountCents      int64
	TaxesAmountCents int64
	TotalAmountCents int64
	ChargesUsage     []ChargeUsage
}

func (u CustomerUsage) Amount() *money.Money {
	return money.New(u.AmountCents, u.Currency)
}

func (u CustomerUsage) Taxes() *money.Money {
	return money.New(u.TaxesAmountCents, u.Currency)
}

func (u CustomerUsage) Total() *money.Money {
	return money.New(u.TotalAmountCents, u.Currency)
}

// ChargeAmount is a charge's amount in the usage currency.
func (u CustomerUsage) ChargeAmount(c ChargeUsage) *money.Money {
	return money.New(c.AmountCents, u.Currency)
}

// TotalUnits sums the units of every charge.
func (u CustomerUsage) TotalUnits() decimal.Decimal {
	total := decimal.Zero
	for _, c := range u.ChargesUsage {
		total = total.Add(c.Units)
	}
	return total
}

type Repository interface {
	// Current returns the usage of the ongoing billing period of a subscription.
	Current(ctx context.Context, customerID, subscriptionID string) (CustomerUsage, error)
}

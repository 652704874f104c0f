package invoice

import (
	"context"

	"github.com/Rhymond/go-money"

	"github.com/iota-uz/billing-portal/modules/portal/domain/pagination"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
	StatusVoided    Status = "voided"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

type Invoice struct {
	ID               string
	Number           string
	IssuingDate      string
	InvoiceType      string
	Status           Status
	PaymentStatus    PaymentStatus
	Currency         string
	TotalAmountCents int64
}

func (i Invoice) Total() *money.Money {
	return money.New(i.TotalAmountCents, i.Currency)
}

// Downloadable reports whether a PDF can be generated for the invoice.
func (i Invoice) Downloadable() bool {
	return i.Status == StatusFinalized
}

type Page struct {
	Collection []Invoice
	Metadata   pagination.Metadata
}

type FindParams struct {
	Page   int
	Limit  int
	Search string
}

type Repository interface {
	List(ctx context.Context, params FindParams) (Page, error)
	// DownloadURL generates the invoice file and returns its URL.
	DownloadURL(ctx context.Context, id string) (string, error)
}

package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// cents decodes BigInt amounts, which the API serializes as strings.
type cents int64

func (c *cents) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return errors.Wrapf(err, "decode amount %q", data)
		}
		v = int64(f)
	}
	*c = cents(v)
	return nil
}

func (c cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(c), 10)), nil
}

type organizationDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LogoURL  string `json:"logoUrl"`
	Timezone string `json:"timezone"`
}

type orgaInfosResponse struct {
	CustomerPortalOrganization *organizationDTO `json:"customerPortalOrganization"`
}

type customerDTO struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	LegalName               string `json:"legalName"`
	LegalNumber             string `json:"legalNumber"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber"`
	Email                   string `json:"email"`
	PaymentProvider         string `json:"paymentProvider"`
	AddressLine1            string `json:"addressLine1"`
	AddressLine2            string `json:"addressLine2"`
	State                   string `json:"state"`
	Country                 string `json:"country"`
	City                    string `json:"city"`
	Zipcode                 string `json:"zipcode"`
	Currency                string `json:"currency"`
	ApplicableTimezone      string `json:"applicableTimezone"`
}

type customerInfosResponse struct {
	CustomerPortalUser *customerDTO `json:"customerPortalUser"`
}

type getCustomerResponse struct {
	Customer *struct {
		ID                      string `json:"id"`
		Name                    string `json:"name"`
		Currency                string `json:"currency"`
		ApplicableTimezone      string `json:"applicableTimezone"`
		ActiveSubscriptionCount int    `json:"activeSubscriptionCount"`
	} `json:"customer"`
}

type subscriptionDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Plan   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"plan"`
}

type subscriptionsForUsageResponse struct {
	Customer *struct {
		ID            string            `json:"id"`
		Subscriptions []subscriptionDTO `json:"subscriptions"`
	} `json:"customer"`
}

type chargeUsageDTO struct {
	Units          decimal.Decimal `json:"units"`
	AmountCents    cents           `json:"amountCents"`
	BillableMetric struct {
		ID              string `json:"id"`
		Code            string `json:"code"`
		Name            string `json:"name"`
		AggregationType string `json:"aggregationType"`
	} `json:"billableMetric"`
}

type customerUsageDTO struct {
	FromDatetime     string           `json:"fromDatetime"`
	ToDatetime       string           `json:"toDatetime"`
	Currency         string           `json:"currency"`
	AmountCents      cents            `json:"amountCents"`
	TaxesAmountCents cents            `json:"taxesAmountCents"`
	TotalAmountCents cents            `json:"totalAmountCents"`
	ChargesUsage     []chargeUsageDTO `json:"chargesUsage"`
}

type customerUsageResponse struct {
	CustomerUsage *customerUsageDTO `json:"customerUsage"`
}

type metadataDTO struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}

type invoiceDTO struct {
	ID               string `json:"id"`
	Number           string `json:"number"`
	IssuingDate      string `json:"issuingDate"`
	InvoiceType      string `json:"invoiceType"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"paymentStatus"`
	Currency         string `json:"currency"`
	TotalAmountCents cents  `json:"totalAmountCents"`
}

type invoicesResponse struct {
	CustomerPortalInvoices *struct {
		Metadata   metadataDTO  `json:"metadata"`
		Collection []invoiceDTO `json:"collection"`
	} `json:"customerPortalInvoices"`
}

type downloadInvoiceResponse struct {
	DownloadCustomerPortalInvoice *struct {
		ID      string `json:"id"`
		FileURL string `json:"fileUrl"`
	} `json:"downloadCustomerPortalInvoice"`
}

type eventDTO struct {
	ID                     string          `json:"id"`
	Code                   string          `json:"code"`
	ExternalCustomerID     string          `json:"externalCustomerId"`
	TransactionID          string          `json:"transactionId"`
	Timestamp              string          `json:"timestamp"`
	ReceivedAt             string          `json:"receivedAt"`
	Payload                json.RawMessage `json:"payload"`
	BillableMetricName     string          `json:"billableMetricName"`
	MatchBillableMetric    bool            `json:"matchBillableMetric"`
	MatchCustomField       bool            `json:"matchCustomField"`
	APIClient              string          `json:"apiClient"`
	IPAddress              string          `json:"ipAddress"`
	ExternalSubscriptionID string          `json:"externalSubscriptionId"`
	CustomerTimezone       string          `json:"customerTimezone"`
}

type eventsResponse struct {
	CustomerPortalEvents *struct {
		Collection []eventDTO  `json:"collection"`
		Metadata   metadataDTO `json:"metadata"`
	} `json:"customerPortalEvents"`
}

type generatePortalURLResponse struct {
	GenerateCustomerPortalURL *struct {
		URL string `json:"url"`
	} `json:"generateCustomerPortalUrl"`
}

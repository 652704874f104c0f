package viewmodels

type Organization struct {
	Name    string
	LogoURL string
}

type Customer struct {
	ID              string
	Name            string
	LegalName       string
	LegalNumber     string
	TaxID           string
	Email           string
	Currency        string
	PaymentProvider string
	AddressLines    []string
}

type Invoice struct {
	ID            string
	Number        string
	IssuingDate   string
	Type          string
	Status        string
	PaymentStatus string
	Amount        string
	Downloadable  bool
}

type InvoicePage struct {
	Invoices []Invoice
	Page     int
	HasMore  bool
	Search   string
	// First is true when rendering the first page, which carries the table head.
	First bool
}

type Charge struct {
	Name   string
	Code   string
	Units  string
	Amount string
}

type UsageItem struct {
	SubscriptionID string
	Name           string
	PlanName       string
	PlanCode       string
	Period         string
	Amount         string
	Taxes          string
	Total          string
	Charges        []Charge
	// Failed is set when the usage of this subscription could not be fetched.
	Failed bool
}

type Event struct {
	Index                  int
	ID                     string
	Code                   string
	Time                   string
	Timestamp              string
	ReceivedAt             string
	TransactionID          string
	ExternalCustomerID     string
	ExternalSubscriptionID string
	BillableMetricName     string
	APIClient              string
	IPAddress              string
	Payload                string
	MatchBillableMetric    bool
	MatchCustomField       bool
	Selected               bool
}

func (e Event) HasWarning() bool {
	return !e.MatchBillableMetric || !e.MatchCustomField
}

type EventGroup struct {
	Date      string
	Continued bool
	Events    []Event
}

// EventCursor is what the next page request needs to continue the list.
// Dates lists every date group rendered so far.
type EventCursor struct {
	Page     int
	Offset   int
	After    string
	Dates    []string
	Selected string
}

type EventPage struct {
	Groups []EventGroup
	// Next is nil when the last page has been rendered.
	Next *EventCursor
	// First is true for the initial render, which carries the section frame.
	First bool
}

func (p EventPage) Empty() bool {
	return len(p.Groups) == 0
}

package mappers

import (
	"bytes"
	"encoding/json"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/customer"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/event"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/invoice"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/organization"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/modules/portal/services"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

func OrganizationToViewModel(org *organization.Organization) viewmodels.Organization {
	if org == nil {
		return viewmodels.Organization{}
	}
	return viewmodels.Organization{
		Name:    org.Name,
		LogoURL: org.LogoURL,
	}
}

func CustomerToViewModel(c customer.Customer) viewmodels.Customer {
	return viewmodels.Customer{
		ID:              c.ID,
		Name:            c.DisplayName(),
		LegalName:       c.LegalName,
		LegalNumber:     c.LegalNumber,
		TaxID:           c.TaxIdentificationNumber,
		Email:           c.Email,
		Currency:        c.Currency,
		PaymentProvider: c.PaymentProvider,
		AddressLines:    c.AddressLines(),
	}
}

func InvoiceToViewModel(inv invoice.Invoice, f timezone.Formatter) viewmodels.Invoice {
	return viewmodels.Invoice{
		ID:            inv.ID,
		Number:        inv.Number,
		IssuingDate:   f.Date(inv.IssuingDate),
		Type:          inv.InvoiceType,
		Status:        string(inv.Status),
		PaymentStatus: string(inv.PaymentStatus),
		Amount:        inv.Total().Display(),
		Downloadable:  inv.Downloadable(),
	}
}

func InvoicePageToViewModel(page invoice.Page, search string, f timezone.Formatter) viewmodels.InvoicePage {
	out := make([]viewmodels.Invoice, 0, len(page.Collection))
	for _, inv := range page.Collection {
		out = append(out, InvoiceToViewModel(inv, f))
	}
	current := page.Metadata.CurrentPage
	if current < 1 {
		current = 1
	}
	return viewmodels.InvoicePage{
		Invoices: out,
		Page:     current,
		HasMore:  page.Metadata.HasMore(),
		Search:   search,
		First:    current == 1,
	}
}

func UsageItemToViewModel(item services.UsageItem, f timezone.Formatter) viewmodels.UsageItem {
	vm := viewmodels.UsageItem{
		SubscriptionID: item.Subscription.ID,
		Name:           item.Subscription.DisplayName(),
		PlanName:       item.Subscription.Plan.Name,
		PlanCode:       item.Subscription.Plan.Code,
		Failed:         item.Err != nil || item.Usage == nil,
	}
	if vm.Failed {
		return vm
	}
	u := item.Usage
	vm.Period = f.Date(u.FromDatetime) + " - " + f.Date(u.ToDatetime)
	vm.Amount = u.Amount().Display()
	vm.Taxes = u.Taxes().Display()
	vm.Total = u.Total().Display()
	vm.Charges = make([]viewmodels.Charge, 0, len(u.ChargesUsage))
	for _, c := range u.ChargesUsage {
		vm.Charges = append(vm.Charges, viewmodels.Charge{
			Name:   c.BillableMetric.Name,
			Code:   c.BillableMetric.Code,
			Units:  c.Units.String(),
			Amount: u.ChargeAmount(c).Display(),
		})
	}
	return vm
}

func UsageSectionToViewModel(section services.UsageSection) []viewmodels.UsageItem {
	f := timezone.NewFormatter(section.Timezone)
	out := make([]viewmodels.UsageItem, 0, len(section.Items))
	for _, item := range section.Items {
		out = append(out, UsageItemToViewModel(item, f))
	}
	return out
}

func EventToViewModel(e event.Event, index int, f timezone.Formatter) viewmodels.Event {
	return viewmodels.Event{
		Index:                  index,
		ID:                     e.ID,
		Code:                   e.Code,
		Time:                   f.Time(e.Timestamp),
		Timestamp:              f.DateTime(e.Timestamp),
		ReceivedAt:             f.DateTime(e.ReceivedAt),
		TransactionID:          e.TransactionID,
		ExternalCustomerID:     e.ExternalCustomerID,
		ExternalSubscriptionID: e.ExternalSubscriptionID,
		BillableMetricName:     e.BillableMetricName,
		APIClient:              e.APIClient,
		IPAddress:              e.IPAddress,
		Payload:                PrettyPayload(e.Payload),
		MatchBillableMetric:    e.MatchBillableMetric,
		MatchCustomField:       e.MatchCustomField,
	}
}

// EventGroupsToViewModel marks the first occurrence of the selected event.
// An empty selected marks nothing.
func EventGroupsToViewModel(groups []services.DateGroup, selected string, f timezone.Formatter) []viewmodels.EventGroup {
	marked := false
	out := make([]viewmodels.EventGroup, 0, len(groups))
	for _, g := range groups {
		vm := viewmodels.EventGroup{
			Date:      g.Date,
			Continued: g.Continued,
			Events:    make([]viewmodels.Event, 0, len(g.Items)),
		}
		for _, item := range g.Items {
			ev := EventToViewModel(item.Event, item.Index, f)
			if !marked && selected != "" && ev.ID == selected {
				ev.Selected = true
				marked = true
			}
			vm.Events = append(vm.Events, ev)
		}
		out = append(out, vm)
	}
	return out
}

// PrettyPayload indents raw JSON. Invalid JSON is returned untouched.
func PrettyPayload(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

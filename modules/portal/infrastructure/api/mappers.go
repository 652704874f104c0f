package api

import (
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/customer"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/event"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/invoice"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/organization"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/subscription"
	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/usage"
	"github.com/iota-uz/billing-portal/modules/portal/domain/pagination"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

func toDomainOrganization(dto *organizationDTO) organization.Organization {
	return organization.Organization{
		ID:       dto.ID,
		Name:     dto.Name,
		LogoURL:  dto.LogoURL,
		Timezone: timezone.Enum(dto.Timezone),
	}
}

func toDomainCustomer(dto *customerDTO) customer.Customer {
	return customer.Customer{
		ID:                      dto.ID,
		Name:                    dto.Name,
		LegalName:               dto.LegalName,
		LegalNumber:             dto.LegalNumber,
		TaxIdentificationNumber: dto.TaxIdentificationNumber,
		Email:                   dto.Email,
		PaymentProvider:         dto.PaymentProvider,
		AddressLine1:            dto.AddressLine1,
		AddressLine2:            dto.AddressLine2,
		State:                   dto.State,
		Country:                 dto.Country,
		City:                    dto.City,
		Zipcode:                 dto.Zipcode,
		Currency:                dto.Currency,
		ApplicableTimezone:      timezone.Enum(dto.ApplicableTimezone),
	}
}

func toDomainSubscription(dto subscriptionDTO) subscription.Subscription {
	return subscription.Subscription{
		ID:     dto.ID,
		Name:   dto.Name,
		Status: subscription.Status(dto.Status),
		Plan: subscription.Plan{
			ID:   dto.Plan.ID,
			Name: dto.Plan.Name,
			Code: dto.Plan.Code,
		},
	}
}

func toDomainUsage(dto *customerUsageDTO) usage.CustomerUsage {
	charges := make([]usage.ChargeUsage, 0, len(dto.ChargesUsage))
	for _, c := range dto.ChargesUsage {
		charges = append(charges, usage.ChargeUsage{
			Units:       c.Units,
			AmountCents: int64(c.AmountCents),
			BillableMetric: usage.BillableMetric{
				ID:              c.BillableMetric.ID,
				Code:            c.BillableMetric.Code,
				Name:            c.BillableMetric.Name,
				AggregationType: c.BillableMetric.AggregationType,
			},
		})
	}
	return usage.CustomerUsage{
		FromDatetime:     dto.FromDatetime,
		ToDatetime:       dto.ToDatetime,
		Currency:         dto.Currency,
		AmountCents:      int64(dto.AmountCents),
		TaxesAmountCents: int64(dto.TaxesAmountCents),
		TotalAmountCents: int64(dto.TotalAmountCents),
		ChargesUsage:     charges,
	}
}

func toDomainMetadata(dto metadataDTO) pagination.Metadata {
	return pagination.Metadata{
		CurrentPage: dto.CurrentPage,
		TotalPages:  dto.TotalPages,
		TotalCount:  dto.TotalCount,
	}
}

func toDomainInvoice(dto invoiceDTO) invoice.Invoice {
	return invoice.Invoice{
		ID:               dto.ID,
		Number:           dto.Number,
		IssuingDate:      dto.IssuingDate,
		InvoiceType:      dto.InvoiceType,
		Status:           invoice.Status(dto.Status),
		PaymentStatus:    invoice.PaymentStatus(dto.PaymentStatus),
		Currency:         dto.Currency,
		TotalAmountCents: int64(dto.TotalAmountCents),
	}
}

func toDomainEvent(dto eventDTO) event.Event {
	return event.Event{
		ID:                     dto.ID,
		Code:                   dto.Code,
		ExternalCustomerID:     dto.ExternalCustomerID,
		TransactionID:          dto.TransactionID,
		Timestamp:              dto.Timestamp,
		ReceivedAt:             dto.ReceivedAt,
		Payload:                dto.Payload,
		BillableMetricName:     dto.BillableMetricName,
		MatchBillableMetric:    dto.MatchBillableMetric,
		MatchCustomField:       dto.MatchCustomField,
		APIClient:              dto.APIClient,
		IPAddress:              dto.IPAddress,
		ExternalSubscriptionID: dto.ExternalSubscriptionID,
		CustomerTimezone:       timezone.Enum(dto.CustomerTimezone),
	}
}

package testhelpers

import (
	"fmt"
	"time"
)

const Token = "portal_token_123"

func OrganizationData(timezone string) map[string]any {
	return map[string]any{
		"customerPortalOrganization": map[string]any{
			"id":       "org_1",
			"name":     "Acme Cloud",
			"logoUrl":  "https://cdn.example.com/acme.png",
			"timezone": timezone,
		},
	}
}

func CustomerData() map[string]any {
	return map[string]any{
		"customerPortalUser": map[string]any{
			"id":                      "cus_1",
			"name":                    "Globex",
			"legalName":               "Globex Corporation",
			"legalNumber":             "LN-42",
			"taxIdentificationNumber": "FR123456789",
			"email":                   "billing@globex.test",
			"paymentProvider":         "stripe",
			"addressLine1":            "1 Main Street",
			"addressLine2":            "",
			"state":                   "",
			"country":                 "FR",
			"city":                    "Paris",
			"zipcode":                 "75001",
			"currency":                "EUR",
			"applicableTimezone":      "TZ_EUROPE_PARIS",
		},
	}
}

func CustomerTimezoneData(timezone string) map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"id":                      "cus_1",
			"name":                    "Globex",
			"currency":                "EUR",
			"applicableTimezone":      timezone,
			"activeSubscriptionCount": 1,
		},
	}
}

// SubscriptionsData takes id:status pairs.
func SubscriptionsData(pairs ...[2]string) map[string]any {
	subs := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		subs = append(subs, map[string]any{
			"id":     p[0],
			"name":   "",
			"status": p[1],
			"plan":   map[string]any{"id": "plan_" + p[0], "name": "Plan " + p[0], "code": "plan_" + p[0]},
		})
	}
	return map[string]any{
		"customer": map[string]any{"id": "cus_1", "subscriptions": subs},
	}
}

func UsageData(totalCents string) map[string]any {
	return map[string]any{
		"customerUsage": map[string]any{
			"fromDatetime":     "2024-03-01T00:00:00Z",
			"toDatetime":       "2024-03-31T23:59:59Z",
			"currency":         "EUR",
			"amountCents":      totalCents,
			"taxesAmountCents": "0",
			"totalAmountCents": totalCents,
			"chargesUsage": []map[string]any{
				{
					"units":       12.5,
					"amountCents": totalCents,
					"billableMetric": map[string]any{
						"id":              "bm_1",
						"code":            "storage",
						"name":            "Storage",
						"aggregationType": "sum_agg",
					},
				},
			},
		},
	}
}

// InvoicesData builds one page of invoices numbered from first.
func InvoicesData(page, totalPages, perPage, first int) map[string]any {
	collection := make([]map[string]any, 0, perPage)
	for i := 0; i < perPage; i++ {
		n := first + i
		collection = append(collection, map[string]any{
			"id":               fmt.Sprintf("inv_%d", n),
			"number":           fmt.Sprintf("ACME-%04d", n),
			"issuingDate":      "2024-03-04",
			"invoiceType":      "subscription",
			"status":           "finalized",
			"paymentStatus":    "succeeded",
			"currency":         "EUR",
			"totalAmountCents": "1050",
		})
	}
	return map[string]any{
		"customerPortalInvoices": map[string]any{
			"metadata":   map[string]any{"currentPage": page, "totalPages": totalPages, "totalCount": totalPages * perPage},
			"collection": collection,
		},
	}
}

func Event(id string, timestamp time.Time) map[string]any {
	return map[string]any{
		"id":                     id,
		"code":                   "api_call",
		"externalCustomerId":     "ext_cus_1",
		"transactionId":          "tr_" + id,
		"timestamp":              timestamp.UTC().Format(time.RFC3339),
		"receivedAt":             timestamp.UTC().Add(time.Second).Format(time.RFC3339),
		"payload":                map[string]any{"code": "api_call", "properties": map[string]any{"count": 1}},
		"billableMetricName":     "API calls",
		"matchBillableMetric":    true,
		"matchCustomField":       true,
		"apiClient":              "curl",
		"ipAddress":              "127.0.0.1",
		"externalSubscriptionId": "ext_sub_1",
		"customerTimezone":       "TZ_UTC",
	}
}

func EventsData(page, totalPages int, events ...map[string]any) map[string]any {
	if events == nil {
		events = []map[string]any{}
	}
	return map[string]any{
		"customerPortalEvents": map[string]any{
			"collection": events,
			"metadata":   map[string]any{"currentPage": page, "totalPages": totalPages},
		},
	}
}

package api

import (
	"github.com/iota-uz/billing-portal/pkg/graphql"
)

const eventItemFragment = `
fragment EventItem on Event {
  id
  code
  timestamp
  matchBillableMetric
  matchCustomField
}`

const debuggerEventDetailsFragment = `
fragment DebuggerEventDetails on Event {
  id
  code
  timestamp
  receivedAt
  externalCustomerId
  externalSubscriptionId
  transactionId
  apiClient
  ipAddress
  payload
  billableMetricName
  matchBillableMetric
  matchCustomField
  customerTimezone
}`

const eventListFragment = `
fragment EventList on Event {
  id
  code
  externalCustomerId
  transactionId
  timestamp
  receivedAt
  payload
  billableMetricName
  matchBillableMetric
  matchCustomField
  apiClient
  ipAddress
  externalSubscriptionId
  customerTimezone
  ...EventItem
  ...DebuggerEventDetails
}`

const customerSubscriptionForUsageFragment = `
fragment CustomerSubscriptionForUsage on Subscription {
  id
  name
  status
  plan {
    id
    name
    code
  }
}`

var (
	getPortalOrgaInfos = graphql.MustParse(`
query getPortalOrgaInfos {
  customerPortalOrganization {
    id
    name
    logoUrl
    timezone
  }
}`)

	getPortalCustomerInfos = graphql.MustParse(`
query getPortalCustomerInfos {
  customerPortalUser {
    id
    name
    legalName
    legalNumber
    taxIdentificationNumber
    paymentProvider
    email
    addressLine1
    addressLine2
    state
    country
    city
    zipcode
    currency
    applicableTimezone
  }
}`)

	getCustomer = graphql.MustParse(`
query getCustomer($id: ID!) {
  customer(id: $id) {
    id
    name
    currency
    applicableTimezone
    activeSubscriptionCount
  }
}`)

	getCustomerSubscriptionForUsage = graphql.MustParse(`
query getCustomerSubscriptionForUsage($id: ID!) {
  customer(id: $id) {
    id
    subscriptions(status: [active, pending]) {
      id
      ...CustomerSubscriptionForUsage
    }
  }
}`, customerSubscriptionForUsageFragment)

	getCustomerUsage = graphql.MustParse(`
query getCustomerUsage($customerId: ID!, $subscriptionId: ID!) {
  customerUsage(customerId: $customerId, subscriptionId: $subscriptionId) {
    fromDatetime
    toDatetime
    currency
    amountCents
    taxesAmountCents
    totalAmountCents
    chargesUsage {
      units
      amountCents
      billableMetric {
        id
        code
        name
        aggregationType
      }
    }
  }
}`)

	customerPortalInvoices = graphql.MustParse(`
query customerPortalInvoices($limit: Int, $page: Int, $searchTerm: String) {
  customerPortalInvoices(limit: $limit, page: $page, searchTerm: $searchTerm) {
    metadata {
      currentPage
      totalPages
      totalCount
    }
    collection {
      id
      number
      issuingDate
      invoiceType
      status
      paymentStatus
      currency
      totalAmountCents
    }
  }
}`)

	downloadCustomerPortalInvoice = graphql.MustParse(`
mutation downloadCustomerPortalInvoice($input: DownloadCustomerPortalInvoiceInput!) {
  downloadCustomerPortalInvoice(input: $input) {
    id
    fileUrl
  }
}`)

	customerPortalEvents = graphql.MustParse(`
query customerPortalEvents($page: Int, $limit: Int) {
  customerPortalEvents(page: $page, limit: $limit) {
    collection {
      ...EventList
    }
    metadata {
      currentPage
      totalPages
    }
  }
}`, eventListFragment, eventItemFragment, debuggerEventDetailsFragment)

	generateCustomerPortalURL = graphql.MustParse(`
mutation generateCustomerPortalUrl($input: GenerateCustomerPortalUrlInput!) {
  generateCustomerPortalUrl(input: $input) {
    url
  }
}`)
)

package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/billing-portal/modules/portal"
	"github.com/iota-uz/billing-portal/modules/portal/infrastructure/api"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/controllers"
	"github.com/iota-uz/billing-portal/modules/portal/testhelpers"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/configuration"
	"github.com/iota-uz/billing-portal/pkg/itf"
	"github.com/iota-uz/billing-portal/pkg/querycache"
)

const root = "/customer-portal/" + testhelpers.Token

func newEnv(t *testing.T, u *testhelpers.Upstream) *itf.TestEnvironment {
	t.Helper()
	client := api.NewClient(api.ClientOptions{
		GraphQL: u.Client(),
		Cache:   querycache.New(querycache.NewMemoryStore(64, time.Minute), querycache.Options{TTL: time.Minute}),
	})
	return itf.NewTestContext().
		WithModules(portal.NewModule(portal.ModuleOptions{
			Client: client,
			Portal: configuration.PortalOptions{
				EventsPageSize:   20,
				InvoicesPageSize: 2,
				ExportMaxPages:   5,
				UsageConcurrency: 2,
			},
		})).
		WithNotFound(func(app application.Application) http.Handler {
			return controllers.NotFound(app)
		}).
		Build(t)
}

func pageOf(req testhelpers.Request) int {
	if p, ok := req.Variables["page"].(float64); ok {
		return int(p)
	}
	return 1
}

func TestPortal_Index(t *testing.T) {
	u := testhelpers.NewUpstream(t).Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC"))
	env := newEnv(t, u)

	res := env.GET(t, root).Do().AssertStatus(http.StatusOK)

	assert.Equal(t, "Acme Cloud", strings.TrimSpace(res.Find("header h1").Text()))
	assert.Equal(t, "https://cdn.example.com/acme.png", res.Find("header img").AttrOr("src", ""))
	for id, src := range map[string]string{
		"customer-section": root + "/customer",
		"invoices-section": root + "/invoices",
		"usage-section":    root + "/usage",
		"debugger-section": root + "/events",
	} {
		sel := res.Find("section#" + id)
		require.Equal(t, 1, sel.Length(), id)
		assert.Equal(t, src, sel.AttrOr("hx-get", ""), id)
		assert.Equal(t, "load", sel.AttrOr("hx-trigger", ""), id)
	}
	assert.Equal(t, testhelpers.Token, u.Requests("getPortalOrgaInfos")[0].Token)
}

func TestPortal_Index_OrganizationFailureKeepsSkeleton(t *testing.T) {
	u := testhelpers.NewUpstream(t).Fail("getPortalOrgaInfos", "boom")
	env := newEnv(t, u)

	res := env.GET(t, root).Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 1, res.Find(`header[data-loading="true"]`).Length())
	assert.Equal(t, 0, res.Find("header h1").Length())
	assert.Equal(t, 4, res.Find(`section[hx-trigger="load"]`).Length())
}

func TestPortal_Customer(t *testing.T) {
	u := testhelpers.NewUpstream(t).Data("getPortalCustomerInfos", testhelpers.CustomerData())
	env := newEnv(t, u)

	res := env.GET(t, root+"/customer").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, "Globex", strings.TrimSpace(res.Find(`[data-field="name"] dd`).Text()))
	assert.Equal(t, "FR123456789", strings.TrimSpace(res.Find(`[data-field="tax-id"] dd`).Text()))
	assert.Contains(t, res.Find(`[data-field="address"] dd`).Text(), "1 Main Street")
	assert.Equal(t, 0, res.Find(`[data-placeholder]`).Length())
}

func TestPortal_Customer_Failure(t *testing.T) {
	u := testhelpers.NewUpstream(t).Fail("getPortalCustomerInfos", "boom")
	env := newEnv(t, u)

	res := env.GET(t, root+"/customer").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 1, res.Find(`section#customer-section [data-placeholder]`).Length())
	assert.Equal(t, "location.reload()", res.Find(`[data-action="placeholder"]`).AttrOr("onclick", ""))
}

func invoicesUpstream(t *testing.T, totalPages int) *testhelpers.Upstream {
	return testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		On("customerPortalInvoices", func(req testhelpers.Request) testhelpers.Response {
			page := pageOf(req)
			return testhelpers.Response{Data: testhelpers.InvoicesData(page, totalPages, 2, (page-1)*2+1)}
		})
}

func TestPortal_Invoices_FirstPageHasSentinel(t *testing.T) {
	u := invoicesUpstream(t, 2)
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices").Do().AssertStatus(http.StatusOK)

	rows := res.Find("#invoices-section #invoice-rows [data-invoice-id]")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "inv_1", rows.First().AttrOr("data-invoice-id", ""))
	assert.Equal(t, "finalized", rows.First().Find("[data-status]").AttrOr("data-status", ""))

	sentinel := res.Find(`#invoice-rows [data-fetch-more]`)
	require.Equal(t, 1, sentinel.Length())
	assert.Equal(t, root+"/invoices?page=2", sentinel.AttrOr("hx-get", ""))
	assert.Equal(t, "outerHTML", sentinel.AttrOr("hx-swap", ""))

	form := rows.First().Find("form")
	assert.Equal(t, root+"/invoices/inv_1/download", form.AttrOr("action", ""))
}

func TestPortal_Invoices_LastPageRendersRowsOnly(t *testing.T) {
	u := invoicesUpstream(t, 2)
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices").Query("page", "2").HTMX().Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 0, res.Find("section").Length())
	rows := res.Find("[data-invoice-id]")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "inv_3", rows.First().AttrOr("data-invoice-id", ""))
	assert.Equal(t, 0, res.Find("[data-fetch-more]").Length())
}

func TestPortal_Invoices_SinglePageHasNoSentinel(t *testing.T) {
	u := invoicesUpstream(t, 1)
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 2, res.Find("[data-invoice-id]").Length())
	assert.Equal(t, 0, res.Find("[data-fetch-more]").Length())
}

func TestPortal_Invoices_SearchIsForwarded(t *testing.T) {
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalInvoices", testhelpers.InvoicesData(1, 1, 0, 1))
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices").Query("search", "ACME").Do().AssertStatus(http.StatusOK)

	require.Equal(t, 1, u.Calls("customerPortalInvoices"))
	assert.Equal(t, "ACME", u.Requests("customerPortalInvoices")[0].Variables["searchTerm"])
	assert.Equal(t, 1, res.Find(`[data-empty="invoices"]`).Length())
	assert.Equal(t, "ACME", res.Find(`input[name="search"]`).AttrOr("value", ""))
}

func TestPortal_Invoices_InvalidPage(t *testing.T) {
	u := invoicesUpstream(t, 2)
	env := newEnv(t, u)

	for _, page := range []string{"-1", "abc"} {
		res := env.GET(t, root+"/invoices").Query("page", page).Do()
		assert.Equal(t, http.StatusBadRequest, res.Status(), page)
	}
	assert.Equal(t, 0, u.Calls("customerPortalInvoices"))
}

func TestPortal_Invoices_Failure(t *testing.T) {
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Fail("customerPortalInvoices", "boom")
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices").Do().AssertStatus(http.StatusOK)
	assert.Equal(t, 1, res.Find(`section#invoices-section [data-placeholder]`).Length())

	res = env.GET(t, root+"/invoices").Query("page", "2").Do().AssertStatus(http.StatusOK)
	assert.Equal(t, 0, res.Find("section").Length())
	assert.Equal(t, 1, res.Find(`[data-placeholder]`).Length())
}

func TestPortal_DownloadInvoice(t *testing.T) {
	u := testhelpers.NewUpstream(t).Data("downloadCustomerPortalInvoice", map[string]any{
		"downloadCustomerPortalInvoice": map[string]any{"id": "inv_1", "fileUrl": "https://files.example.com/inv_1.pdf"},
	})
	env := newEnv(t, u)

	res := env.POST(t, root+"/invoices/inv_1/download").Do().AssertStatus(http.StatusSeeOther)
	assert.Equal(t, "https://files.example.com/inv_1.pdf", res.Header().Get("Location"))

	res = env.POST(t, root+"/invoices/inv_1/download").HTMX().Do().AssertStatus(http.StatusOK)
	assert.Equal(t, "https://files.example.com/inv_1.pdf", res.Header().Get("Hx-Redirect"))

	reqs := u.Requests("downloadCustomerPortalInvoice")
	require.Len(t, reqs, 2)
	assert.Equal(t, map[string]any{"id": "inv_1"}, reqs[0].Variables["input"])
	assert.Equal(t, testhelpers.Token, reqs[0].Token)
}

func TestPortal_DownloadInvoice_Failure(t *testing.T) {
	u := testhelpers.NewUpstream(t).Fail("downloadCustomerPortalInvoice", "not found")
	env := newEnv(t, u)

	env.POST(t, root+"/invoices/inv_1/download").Do().AssertStatus(http.StatusBadGateway)
	env.GET(t, root+"/invoices/inv_1/download").Do().AssertStatus(http.StatusMethodNotAllowed)
}

func TestPortal_ExportInvoices(t *testing.T) {
	u := invoicesUpstream(t, 2)
	env := newEnv(t, u)

	res := env.GET(t, root+"/invoices/export").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "invoices.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(res.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "ACME-0001", rows[1][0])
	assert.Equal(t, "ACME-0004", rows[4][0])
	assert.Equal(t, 2, u.Calls("customerPortalInvoices"))
}

func usageUpstream(t *testing.T, pairs ...[2]string) *testhelpers.Upstream {
	return testhelpers.NewUpstream(t).
		Data("getPortalCustomerInfos", testhelpers.CustomerData()).
		Data("getCustomer", testhelpers.CustomerTimezoneData("TZ_UTC")).
		Data("getCustomerSubscriptionForUsage", testhelpers.SubscriptionsData(pairs...))
}

func TestPortal_Usage(t *testing.T) {
	u := usageUpstream(t, [2]string{"sub_1", "active"}, [2]string{"sub_2", "terminated"}, [2]string{"sub_3", "active"}).
		On("getCustomerUsage", func(req testhelpers.Request) testhelpers.Response {
			if req.Variables["subscriptionId"] == "sub_3" {
				return testhelpers.Response{Errors: []string{"usage unavailable"}}
			}
			return testhelpers.Response{Data: testhelpers.UsageData("1050")}
		})
	env := newEnv(t, u)

	res := env.GET(t, root+"/usage").Do().AssertStatus(http.StatusOK)

	items := res.Find("section#usage-section [data-subscription-id]")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "sub_1", items.Eq(0).AttrOr("data-subscription-id", ""))
	assert.NotEmpty(t, strings.TrimSpace(items.Eq(0).Find(`[data-role="total"]`).Text()))
	assert.Equal(t, 1, items.Eq(0).Find(`[data-charge="storage"]`).Length())
	assert.Equal(t, "sub_3", items.Eq(1).AttrOr("data-subscription-id", ""))
	assert.Equal(t, 1, items.Eq(1).Find(`[data-role="failed"]`).Length())
	assert.Equal(t, 2, u.Calls("getCustomerUsage"))
}

func TestPortal_Usage_Empty(t *testing.T) {
	u := usageUpstream(t, [2]string{"sub_1", "pending"})
	env := newEnv(t, u)

	res := env.GET(t, root+"/usage").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 1, res.Find(`[data-empty="usage"]`).Length())
	assert.Equal(t, 0, res.Find("[data-subscription-id]").Length())
	assert.Equal(t, 0, u.Calls("getCustomerUsage"))
}

func eventsAt(day time.Time, ids ...string) []map[string]any {
	out := make([]map[string]any, 0, len(ids))
	for i, id := range ids {
		out = append(out, testhelpers.Event(id, day.Add(-time.Duration(i)*time.Minute)))
	}
	return out
}

func TestPortal_Events_FirstPage(t *testing.T) {
	day := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	events := append(eventsAt(day, "e1", "e2"), eventsAt(day.AddDate(0, 0, -1), "e3")...)
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(1, 3, events...))
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").Do().AssertStatus(http.StatusOK)

	headers := res.Find("#debugger-section [data-date-header]")
	require.Equal(t, 2, headers.Length())
	assert.Equal(t, "Mar. 05, 2024", headers.Eq(0).AttrOr("data-date-header", ""))
	assert.Equal(t, "Mar. 04, 2024", headers.Eq(1).AttrOr("data-date-header", ""))

	rows := res.Find("#event-list .event-row[data-id]")
	require.Equal(t, 3, rows.Length())
	for i, id := range []string{"e1", "e2", "e3"} {
		assert.Equal(t, id, rows.Eq(i).AttrOr("data-id", ""))
		assert.Equal(t, fmt.Sprintf("event-item-%d", i), rows.Eq(i).AttrOr("id", ""))
	}

	selected := res.Find(`.event-row[data-selected="true"]`)
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "e1", selected.AttrOr("data-id", ""))
	visible := res.Find("[data-event-details]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, hidden := s.Attr("hidden")
		return !hidden
	})
	require.Equal(t, 1, visible.Length())
	assert.Equal(t, "e1", visible.AttrOr("data-event-details", ""))
	assert.Equal(t, 1, visible.Find(`[data-role="payload"]`).Length())

	sentinel := res.Find("#event-list [data-fetch-more]")
	require.Equal(t, 1, sentinel.Length())
	next, err := url.Parse(sentinel.AttrOr("hx-get", ""))
	require.NoError(t, err)
	assert.Equal(t, root+"/events", next.Path)
	assert.Equal(t, "2", next.Query().Get("page"))
	assert.Equal(t, "3", next.Query().Get("offset"))
	assert.Equal(t, "e3", next.Query().Get("after"))
	assert.Equal(t, []string{"Mar. 05, 2024", "Mar. 04, 2024"}, next.Query()["date"])
	assert.Equal(t, "e1", next.Query().Get("selected"))
}

func TestPortal_Events_NextPageContinuesGroup(t *testing.T) {
	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	events := append(eventsAt(day, "e3", "e4"), eventsAt(day.AddDate(0, 0, -1), "e5")...)
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(2, 2, events...))
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").
		Query("page", "2").
		Query("offset", "3").
		Query("after", "e3").
		QueryValues("date", "Mar. 05, 2024", "Mar. 04, 2024").
		Query("selected", "e1").
		HTMX().
		Do().
		AssertStatus(http.StatusOK)

	assert.Equal(t, 0, res.Find("section").Length())
	rows := res.Find(".event-row[data-id]")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "e4", rows.Eq(0).AttrOr("data-id", ""))
	assert.Equal(t, "event-item-3", rows.Eq(0).AttrOr("id", ""))
	assert.Equal(t, "e5", rows.Eq(1).AttrOr("data-id", ""))
	assert.Equal(t, "event-item-4", rows.Eq(1).AttrOr("id", ""))

	headers := res.Find("[data-date-header]")
	require.Equal(t, 1, headers.Length())
	assert.Equal(t, "Mar. 03, 2024", headers.AttrOr("data-date-header", ""))

	oob := res.Find(`[hx-swap-oob="beforeend"]`)
	require.Equal(t, 1, oob.Length())
	assert.Equal(t, "event-group-mar-04-2024", oob.AttrOr("id", ""))
	assert.Equal(t, 1, oob.Find(`.event-row[data-id="e4"]`).Length())

	assert.Equal(t, 0, res.Find(`.event-row[data-selected="true"]`).Length())
	assert.Equal(t, 0, res.Find("[data-fetch-more]").Length())
	assert.EqualValues(t, 2, u.Requests("customerPortalEvents")[0].Variables["page"])
}

func TestPortal_Events_NextPageMergesIntoEarlierDate(t *testing.T) {
	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	events := append(eventsAt(day.AddDate(0, 0, -1), "e4"), eventsAt(day.AddDate(0, 0, 1), "e5")...)
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(2, 3, events...))
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").
		Query("page", "2").
		Query("offset", "3").
		Query("after", "e3").
		QueryValues("date", "Mar. 05, 2024", "Mar. 04, 2024").
		HTMX().
		Do().
		AssertStatus(http.StatusOK)

	headers := res.Find("[data-date-header]")
	require.Equal(t, 1, headers.Length())
	assert.Equal(t, "Mar. 03, 2024", headers.AttrOr("data-date-header", ""))

	oob := res.Find(`[hx-swap-oob="beforeend"]`)
	require.Equal(t, 1, oob.Length())
	assert.Equal(t, "event-group-mar-05-2024", oob.AttrOr("id", ""))
	assert.Equal(t, "event-item-4", oob.Find(`.event-row[data-id="e5"]`).AttrOr("id", ""))

	sentinel := res.Find("[data-fetch-more]")
	require.Equal(t, 1, sentinel.Length())
	next, err := url.Parse(sentinel.AttrOr("hx-get", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Mar. 05, 2024", "Mar. 04, 2024", "Mar. 03, 2024"}, next.Query()["date"])
	assert.Equal(t, "e5", next.Query().Get("after"))
	assert.Equal(t, "5", next.Query().Get("offset"))
}

func TestPortal_Events_Empty(t *testing.T) {
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(1, 0))
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").Do().AssertStatus(http.StatusOK)

	assert.Equal(t, 1, res.Find(`[data-empty="events"]`).Length())
	assert.Equal(t, 0, res.Find("#event-list").Length())
	assert.Equal(t, 0, res.Find("[data-fetch-more]").Length())
}

func TestPortal_Events_Failure(t *testing.T) {
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Fail("customerPortalEvents", "boom")
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").Do().AssertStatus(http.StatusOK)
	assert.Equal(t, 1, res.Find(`section#debugger-section [data-placeholder]`).Length())
	assert.Equal(t, 1, res.Find(`[data-action="refresh"]`).Length())

	res = env.GET(t, root+"/events").Query("page", "2").Do().AssertStatus(http.StatusOK)
	assert.Equal(t, 0, res.Find("section").Length())
	assert.Equal(t, 1, res.Find(`[data-placeholder]`).Length())
}

func TestPortal_Events_EveryRequestReachesUpstream(t *testing.T) {
	day := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(1, 2, eventsAt(day, "e1")...))
	env := newEnv(t, u)

	env.GET(t, root+"/events").Do().AssertStatus(http.StatusOK)
	require.Equal(t, 1, u.Calls("customerPortalEvents"))

	for i := 2; i <= 3; i++ {
		env.GET(t, root+"/events").Query("page", "2").Query("offset", "1").Query("after", "e1").HTMX().Do().AssertStatus(http.StatusOK)
		require.Equal(t, i, u.Calls("customerPortalEvents"))
	}

	env.GET(t, root+"/events").Do().AssertStatus(http.StatusOK)
	assert.Equal(t, 4, u.Calls("customerPortalEvents"))
	assert.Equal(t, 1, u.Calls("getPortalOrgaInfos"))
}

func TestPortal_Events_NextPageNeverSelects(t *testing.T) {
	day := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	u := testhelpers.NewUpstream(t).
		Data("getPortalOrgaInfos", testhelpers.OrganizationData("TZ_UTC")).
		Data("customerPortalEvents", testhelpers.EventsData(2, 3, eventsAt(day, "e19", "e20", "e21")...))
	env := newEnv(t, u)

	res := env.GET(t, root+"/events").
		Query("page", "2").
		Query("offset", "20").
		Query("after", "e20").
		Query("date", "Mar. 05, 2024").
		Query("selected", "e19").
		HTMX().
		Do().
		AssertStatus(http.StatusOK)

	rows := res.Find(".event-row[data-id]")
	require.Equal(t, 3, rows.Length())
	assert.Equal(t, 0, res.Find(`.event-row[data-selected="true"]`).Length())
	visible := res.Find("[data-event-details]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, hidden := s.Attr("hidden")
		return !hidden
	})
	assert.Equal(t, 0, visible.Length())

	next, err := url.Parse(res.Find("[data-fetch-more]").AttrOr("hx-get", ""))
	require.NoError(t, err)
	assert.Equal(t, "e19", next.Query().Get("selected"))
}

func TestPortal_NotFound(t *testing.T) {
	env := newEnv(t, testhelpers.NewUpstream(t))

	res := env.GET(t, "/nope").Header("Accept-Language", "fr").Do().AssertStatus(http.StatusNotFound)

	assert.Equal(t, 1, res.Find("html").Length())
	assert.Equal(t, 1, res.Find(`[data-placeholder] [data-role="title"]`).Length())
	assert.Equal(t, "fr", res.Find("html").AttrOr("lang", ""))
}

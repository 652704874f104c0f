package controllers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/iota-uz/billing-portal/modules/portal/presentation/controllers/dtos"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/mappers"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/templates/pages/portal"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/modules/portal/services"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/constants"
	"github.com/iota-uz/billing-portal/pkg/htmx"
	"github.com/iota-uz/billing-portal/pkg/middleware"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PortalControllerConfig struct {
	App      application.Application
	BasePath string
}

type PortalController struct {
	app       application.Application
	basePath  string
	orgs      *services.OrganizationService
	customers *services.CustomerService
	invoices  *services.InvoiceService
	usage     *services.UsageService
	events    *services.EventService
}

func NewPortalController(cfg PortalControllerConfig) application.Controller {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/customer-portal"
	}
	app := cfg.App
	return &PortalController{
		app:       app,
		basePath:  basePath,
		orgs:      app.Service(services.OrganizationService{}).(*services.OrganizationService),
		customers: app.Service(services.CustomerService{}).(*services.CustomerService),
		invoices:  app.Service(services.InvoiceService{}).(*services.InvoiceService),
		usage:     app.Service(services.UsageService{}).(*services.UsageService),
		events:    app.Service(services.EventService{}).(*services.EventService),
	}
}

func (c *PortalController) Key() string {
	return c.basePath
}

func (c *PortalController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath + "/{token}").Subrouter()
	router.Use(
		middleware.WithPortalToken(),
		middleware.ProvideLocalizer(c.app),
		middleware.WithPageContext(),
	)
	router.HandleFunc("", c.Index).Methods(http.MethodGet)
	router.HandleFunc("/customer", c.Customer).Methods(http.MethodGet)
	router.HandleFunc("/invoices", c.Invoices).Methods(http.MethodGet)
	router.HandleFunc("/invoices/export", c.ExportInvoices).Methods(http.MethodGet)
	router.HandleFunc("/invoices/{id}/download", c.DownloadInvoice).Methods(http.MethodPost)
	router.HandleFunc("/usage", c.Usage).Methods(http.MethodGet)
	router.HandleFunc("/events", c.Events).Methods(http.MethodGet)
}

// portalPath is the root of the portal the request belongs to.
func (c *PortalController) portalPath(r *http.Request) string {
	return c.basePath + "/" + url.PathEscape(mux.Vars(r)["token"])
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithStreaming()).ServeHTTP(w, r)
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Debug("invalid portal query")
	http.Error(w, composables.UsePageCtx(r.Context()).T("Portal.Errors.BadRequest"), http.StatusBadRequest)
}

// formatter returns the organization timezone formatter, UTC when the
// organization cannot be fetched.
func (c *PortalController) formatter(ctx context.Context) timezone.Formatter {
	infos, err := c.orgs.Infos(ctx)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("failed to fetch organization, using UTC")
	}
	return infos.Formatter
}

func (c *PortalController) Index(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	infos, err := c.orgs.Infos(r.Context())
	defer func() { observeSection("page", start, err) }()
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to fetch organization")
	}
	render(w, r, portal.Index(portal.IndexPageProps{
		Base:         c.portalPath(r),
		Organization: mappers.OrganizationToViewModel(infos.Organization),
	}))
}

func (c *PortalController) Customer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	customer, err := c.customers.Infos(r.Context())
	defer func() { observeSection("customer", start, err) }()
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to fetch customer")
		render(w, r, portal.CustomerSection(portal.CustomerSectionProps{Failed: true}))
		return
	}
	render(w, r, portal.CustomerSection(portal.CustomerSectionProps{
		Customer: mappers.CustomerToViewModel(customer),
	}))
}

func (c *PortalController) Invoices(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query, err := composables.UseQuery(&dtos.InvoicesQuery{}, r)
	if err == nil {
		err = constants.Validate.Struct(query)
	}
	if err != nil {
		badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	f := c.formatter(ctx)
	page, err := c.invoices.List(ctx, query.Page, query.Search)
	defer func() { observeSection("invoices", start, err) }()

	props := portal.InvoicesProps{Base: c.portalPath(r)}
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to list invoices")
		props.Failed = true
		if query.Page > 1 {
			render(w, r, portal.ErrorPlaceholder())
			return
		}
		render(w, r, portal.InvoicesSection(props))
		return
	}
	props.Page = mappers.InvoicePageToViewModel(page, query.Search, f)
	if query.Page > 1 {
		render(w, r, portal.InvoiceRows(props))
		return
	}
	render(w, r, portal.InvoicesSection(props))
}

func (c *PortalController) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fileURL, err := c.invoices.Download(ctx, mux.Vars(r)["id"])
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to download invoice")
		http.Error(w, composables.UsePageCtx(ctx).T("Portal.Errors.Title"), http.StatusBadGateway)
		return
	}
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, fileURL)
		return
	}
	http.Redirect(w, r, fileURL, http.StatusSeeOther)
}

func (c *PortalController) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	query, err := composables.UseQuery(&dtos.ExportQuery{}, r)
	if err == nil {
		err = constants.Validate.Struct(query)
	}
	if err != nil {
		badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	pg := composables.UsePageCtx(ctx).Namespace("Portal.Invoices")
	labels := make(map[string]string)
	for _, key := range []string{
		"draft", "finalized", "voided",
		"pending", "succeeded", "failed",
		"subscription", "add_on", "credit", "one_off",
	} {
		if label := pg.TSafe("Statuses." + key); label != "" {
			labels[key] = label
		}
	}
	file, err := c.invoices.Export(ctx, services.ExportOptions{
		Search:    query.Search,
		Formatter: c.formatter(ctx),
		Headers: [7]string{
			pg.T("Columns.Number"),
			pg.T("Columns.IssuingDate"),
			pg.T("Columns.Type"),
			pg.T("Columns.Status"),
			pg.T("Columns.PaymentStatus"),
			pg.T("Columns.Currency"),
			pg.T("Columns.Amount"),
		},
		Labels: labels,
	})
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to export invoices")
		http.Error(w, composables.UsePageCtx(ctx).T("Portal.Errors.Title"), http.StatusBadGateway)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			composables.UseLogger(ctx).WithError(err).Warn("failed to close export workbook")
		}
	}()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	if err := file.Write(w); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to write export workbook")
	}
}

func (c *PortalController) Usage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	section, err := c.usage.Section(r.Context())
	defer func() { observeSection("usage", start, err) }()
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load usage section")
		render(w, r, portal.UsageSection(portal.UsageProps{Failed: true}))
		return
	}
	render(w, r, portal.UsageSection(portal.UsageProps{
		Items: mappers.UsageSectionToViewModel(section),
	}))
}

func (c *PortalController) Events(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query, err := composables.UseQuery(&dtos.EventsQuery{}, r)
	if err == nil {
		err = constants.Validate.Struct(query)
	}
	if err != nil {
		badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	first := query.Page <= 1
	props := portal.DebuggerProps{Base: c.portalPath(r)}

	f := c.formatter(ctx)
	page, err := c.events.Page(ctx, query.Page)
	defer func() { observeSection("events", start, err) }()
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to list events")
		if !first {
			render(w, r, portal.ErrorPlaceholder())
			return
		}
		props.Failed = true
		render(w, r, portal.DebuggerSection(props))
		return
	}

	opts := services.GroupOptions{Offset: query.Offset, After: query.After, Seen: query.Dates}
	if first {
		opts = services.GroupOptions{}
	}
	groups := c.events.GroupByDate(page.Collection, f, opts)
	// Later batches never carry a selection: the selected row is already in
	// the browser, and rendering it again would mark a second row.
	selected, highlight := query.Selected, ""
	if first {
		if selected == "" && len(groups) > 0 {
			selected = groups[0].Items[0].Event.ID
		}
		highlight = selected
	}
	props.Page = viewmodels.EventPage{
		Groups: mappers.EventGroupsToViewModel(groups, highlight, f),
		First:  first,
	}
	if c.events.HasMore(page.Metadata) {
		lastID, count := services.LastRendered(groups)
		if lastID == "" {
			lastID = opts.After
		}
		props.Page.Next = &viewmodels.EventCursor{
			Page:     page.Metadata.NextPage(),
			Offset:   opts.Offset + count,
			After:    lastID,
			Dates:    services.SeenDates(opts.Seen, groups),
			Selected: selected,
		}
	}

	if first {
		render(w, r, portal.DebuggerSection(props))
		return
	}
	render(w, r, portal.EventBatch(props))
}

package portal

import (
	"embed"

	"github.com/iota-uz/billing-portal/modules/portal/infrastructure/api"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/assets"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/controllers"
	"github.com/iota-uz/billing-portal/modules/portal/services"
	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/configuration"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

type ModuleOptions struct {
	Client *api.Client
	Portal configuration.PortalOptions
	// BasePath defaults to /customer-portal.
	BasePath string
}

func NewModule(opts ModuleOptions) application.Module {
	return &Module{opts: opts}
}

type Module struct {
	opts ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	client := m.opts.Client
	customerService := services.NewCustomerService(api.NewCustomerRepository(client))
	app.RegisterServices(
		services.NewOrganizationService(api.NewOrganizationRepository(client)),
		customerService,
		services.NewInvoiceService(services.InvoiceServiceConfig{
			Repo:           api.NewInvoiceRepository(client),
			PageSize:       m.opts.Portal.InvoicesPageSize,
			ExportMaxPages: m.opts.Portal.ExportMaxPages,
		}),
		services.NewUsageService(services.UsageServiceConfig{
			Customers:     customerService,
			Subscriptions: api.NewSubscriptionRepository(client),
			Usage:         api.NewUsageRepository(client),
			Concurrency:   m.opts.Portal.UsageConcurrency,
		}),
		services.NewEventService(services.EventServiceConfig{
			Repo:     api.NewEventRepository(client),
			PageSize: m.opts.Portal.EventsPageSize,
		}),
	)
	app.RegisterControllers(
		controllers.NewPortalController(controllers.PortalControllerConfig{
			App:      app,
			BasePath: m.opts.BasePath,
		}),
	)
	app.RegisterHashFsAssets(assets.HashFS)
	app.RegisterLocaleFiles(&LocaleFiles)
	return nil
}

func (m *Module) Name() string {
	return "portal"
}

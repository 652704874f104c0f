package portal

import (
	"github.com/a-h/templ"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/pkg/types"
)

type IndexPageProps struct {
	// Base is the portal root, /customer-portal/{token}.
	Base         string
	Organization viewmodels.Organization
}

func Index(props IndexPageProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		title := pg.T("Meta.Title")
		if props.Organization.Name != "" {
			title = props.Organization.Name + " - " + title
		}
		return Document(title,
			base.El("main", base.Attrs{"class": "portal mx-auto max-w-5xl px-4 py-20", "data-portal": "true"},
				Header(props.Organization),
				lazySection("customer-section", props.Base+"/customer", CustomerSkeleton()),
				lazySection("invoices-section", props.Base+"/invoices", InvoicesSkeleton()),
				lazySection("usage-section", props.Base+"/usage", UsageSkeleton()),
				lazySection("debugger-section", props.Base+"/events", DebuggerSkeleton()),
			),
		)
	})
}

// Header shows the organization logo and name. Without a name, the header
// stays in its skeleton state.
func Header(org viewmodels.Organization) templ.Component {
	if org.Name == "" {
		return base.El("header", base.Attrs{"class": "portal-header flex items-center mb-12", "data-loading": "true"},
			base.Skeleton(base.SkeletonProps{Variant: base.SkeletonConnectorAvatar, Size: "medium", Class: "mr-3"}),
			base.Skeleton(base.SkeletonProps{Variant: base.SkeletonText, Width: 120, Height: 12}),
		)
	}
	return withPage(func(pg types.PageContextProvider) templ.Component {
		var logo templ.Component
		if org.LogoURL != "" {
			logo = base.El("div", base.Attrs{"class": "org-logo mr-3"},
				base.Void("img", base.Attrs{
					"src": org.LogoURL,
					"alt": pg.T("Header.LogoAlt", map[string]interface{}{"Name": org.Name}),
				}),
			)
		}
		return base.El("header", base.Attrs{"class": "portal-header flex items-center mb-12"},
			logo,
			base.Typography(base.TypographyProps{Variant: base.Headline, Tag: "h1"}, base.Text(org.Name)),
		)
	})
}

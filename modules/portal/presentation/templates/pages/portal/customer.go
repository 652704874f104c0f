package portal

import (
	"github.com/a-h/templ"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/pkg/types"
)

type CustomerSectionProps struct {
	Customer viewmodels.Customer
	Failed   bool
}

func CustomerSection(props CustomerSectionProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		if props.Failed {
			return section("customer-section", SectionTitle(pg.T("Customer.Title")), ErrorPlaceholder())
		}
		c := props.Customer
		var address []templ.Component
		for _, line := range c.AddressLines {
			address = append(address, base.El("div", nil, base.Text(line)))
		}
		return section("customer-section",
			SectionTitle(pg.T("Customer.Title")),
			base.El("dl", base.Attrs{"class": "info-grid grid grid-cols-2 gap-4"},
				infoField("name", pg.T("Customer.Name"), base.Text(orDash(c.Name))),
				infoField("legal-name", pg.T("Customer.LegalName"), base.Text(orDash(c.LegalName))),
				infoField("legal-number", pg.T("Customer.LegalNumber"), base.Text(orDash(c.LegalNumber))),
				infoField("tax-id", pg.T("Customer.TaxID"), base.Text(orDash(c.TaxID))),
				infoField("email", pg.T("Customer.Email"), base.Text(orDash(c.Email))),
				infoField("address", pg.T("Customer.Address"), addressBlock(address)),
			),
		)
	})
}

func addressBlock(lines []templ.Component) templ.Component {
	if len(lines) == 0 {
		return base.Text("-")
	}
	return base.Group(lines...)
}

func infoField(key, label string, value templ.Component) templ.Component {
	return base.El("div", base.Attrs{"data-field": key},
		base.Typography(base.TypographyProps{Variant: base.Caption, Tag: "dt"}, base.Text(label)),
		base.Typography(base.TypographyProps{Variant: base.Body, Color: base.Grey700, Tag: "dd"}, value),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func CustomerSkeleton() templ.Component {
	fields := make([]templ.Component, 0, 6)
	for i := 0; i < 6; i++ {
		fields = append(fields, base.El("div", base.Attrs{"class": "flex flex-col gap-2"},
			base.Skeleton(base.SkeletonProps{Width: 80}),
			base.Skeleton(base.SkeletonProps{Width: 200}),
		))
	}
	return base.El("div", base.Attrs{"class": "grid grid-cols-2 gap-4"}, fields...)
}

package portal

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/pkg/types"
)

type InvoicesProps struct {
	Base   string
	Page   viewmodels.InvoicePage
	Failed bool
}

func (p InvoicesProps) listURL(page int) string {
	values := url.Values{}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if p.Page.Search != "" {
		values.Set("search", p.Page.Search)
	}
	return withQuery(p.Base+"/invoices", values)
}

func (p InvoicesProps) exportURL() string {
	values := url.Values{}
	if p.Page.Search != "" {
		values.Set("search", p.Page.Search)
	}
	return withQuery(p.Base+"/invoices/export", values)
}

// InvoicesSection is the whole section: title, search, table head and the first page.
func InvoicesSection(props InvoicesProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		if props.Failed {
			return section("invoices-section", SectionTitle(pg.T("Invoices.Title")), ErrorPlaceholder())
		}
		search := base.El("label", base.Attrs{"class": "search-box flex items-center gap-2"},
			icons.MagnifyingGlass(icons.Props{Size: "16"}),
			base.Void("input", base.Attrs{
				"type":        "search",
				"name":        "search",
				"value":       props.Page.Search,
				"placeholder": pg.T("Invoices.Search"),
				"hx-get":      props.Base + "/invoices",
				"hx-trigger":  "input changed delay:300ms, search",
				"hx-target":   "#invoices-section",
				"hx-swap":     "outerHTML",
			}),
		)
		export := base.Button(base.ButtonProps{
			Variant: base.ButtonQuaternary,
			Size:    base.ButtonSmall,
			Icon:    icons.DownloadSimple(icons.Props{Size: "16"}),
			Label:   pg.T("Invoices.Export"),
			Href:    props.exportURL(),
			Attrs:   base.Attrs{"data-action": "export", "download": ""},
		})

		var body templ.Component
		if len(props.Page.Invoices) == 0 {
			msg := pg.T("Invoices.Empty")
			if props.Page.Search != "" {
				msg = pg.T("Invoices.EmptySearch")
			}
			body = base.Typography(base.TypographyProps{Attrs: base.Attrs{"data-empty": "invoices"}}, base.Text(msg))
		} else {
			body = base.El("div", base.Attrs{"class": "invoice-table", "role": "table"},
				invoiceHead(pg),
				base.El("div", base.Attrs{"id": "invoice-rows", "role": "rowgroup"}, InvoiceRows(props)),
			)
		}
		return section("invoices-section",
			SectionTitle(pg.T("Invoices.Title"), search, export),
			body,
		)
	})
}

func invoiceHead(pg types.PageContextProvider) templ.Component {
	cell := func(key string) templ.Component {
		return base.Typography(base.TypographyProps{Variant: base.CaptionHl, Attrs: base.Attrs{"role": "columnheader"}}, base.Text(pg.T("Invoices.Columns."+key)))
	}
	return base.El("div", base.Attrs{"class": "invoice-row invoice-head", "role": "row"},
		cell("Number"),
		cell("IssuingDate"),
		cell("Status"),
		cell("PaymentStatus"),
		cell("Amount"),
		base.El("span", nil),
	)
}

// InvoiceRows renders one page of rows followed by the fetch-more sentinel
// when more pages exist. Next pages are swapped in place of the sentinel.
func InvoiceRows(props InvoicesProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		rows := make([]templ.Component, 0, len(props.Page.Invoices)+1)
		for _, inv := range props.Page.Invoices {
			rows = append(rows, invoiceRow(pg, props.Base, inv))
		}
		if props.Page.HasMore {
			rows = append(rows, base.InfiniteScroll(base.InfiniteScrollProps{
				URL: props.listURL(props.Page.Page + 1),
			}, invoiceRowSkeleton()))
		}
		return base.Group(rows...)
	})
}

func statusLabel(pg types.PageContextProvider, value string) string {
	if label := pg.TSafe("Invoices.Statuses." + value); label != "" {
		return label
	}
	return value
}

func invoiceRow(pg types.PageContextProvider, basePath string, inv viewmodels.Invoice) templ.Component {
	var action templ.Component
	if inv.Downloadable {
		action = base.El("form", base.Attrs{
			"method": "post",
			"action": basePath + "/invoices/" + url.PathEscape(inv.ID) + "/download",
			"target": "_blank",
		},
			base.Tooltip(pg.T("Invoices.Download"), base.TooltipTop, base.Button(base.ButtonProps{
				Variant: base.ButtonQuaternary,
				Size:    base.ButtonSmall,
				Icon:    icons.DownloadSimple(icons.Props{Size: "16"}),
				Attrs:   base.Attrs{"type": "submit", "aria-label": pg.T("Invoices.Download")},
			})),
		)
	}
	return base.El("div", base.Attrs{"class": "invoice-row", "role": "row", "data-invoice-id": inv.ID},
		base.Typography(base.TypographyProps{Variant: base.BodyHl, NoWrap: true}, base.Text(inv.Number)),
		base.Typography(base.TypographyProps{NoWrap: true}, base.Text(inv.IssuingDate)),
		base.Typography(base.TypographyProps{Attrs: base.Attrs{"data-status": inv.Status}}, base.Text(statusLabel(pg, inv.Status))),
		base.Typography(base.TypographyProps{Color: paymentColor(inv.PaymentStatus), Attrs: base.Attrs{"data-payment-status": inv.PaymentStatus}}, base.Text(statusLabel(pg, inv.PaymentStatus))),
		base.Typography(base.TypographyProps{Variant: base.BodyHl, Color: base.Grey700, Class: "text-right"}, base.Text(inv.Amount)),
		base.El("div", base.Attrs{"class": "flex justify-end"}, action),
	)
}

func paymentColor(status string) base.TypographyColor {
	switch status {
	case "succeeded":
		return base.ColorSuccess
	case "failed":
		return base.ColorDanger
	default:
		return base.ColorDefault
	}
}

func invoiceRowSkeleton() templ.Component {
	return base.El("div", base.Attrs{"class": "invoice-row"},
		base.Skeleton(base.SkeletonProps{Width: 120}),
		base.Skeleton(base.SkeletonProps{Width: 80}),
		base.Skeleton(base.SkeletonProps{Width: 64}),
		base.Skeleton(base.SkeletonProps{Width: 64}),
		base.Skeleton(base.SkeletonProps{Width: 80}),
		base.El("span", nil),
	)
}

func InvoicesSkeleton() templ.Component {
	return base.El("div", nil,
		base.Skeleton(base.SkeletonProps{Width: 160, Class: "mb-6"}),
		invoiceRowSkeleton(),
		invoiceRowSkeleton(),
		invoiceRowSkeleton(),
	)
}

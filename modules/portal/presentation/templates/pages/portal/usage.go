package portal

import (
	"github.com/a-h/templ"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/pkg/types"
)

type UsageProps struct {
	Items []viewmodels.UsageItem
	// Failed covers the customer, timezone and subscription queries.
	Failed bool
}

// UsageSection shows the "no active subscription" text both on error and
// when no subscription is active.
func UsageSection(props UsageProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		var content templ.Component
		if props.Failed || len(props.Items) == 0 {
			content = base.Typography(base.TypographyProps{Attrs: base.Attrs{"data-empty": "usage"}}, base.Text(pg.T("Usage.Empty")))
		} else {
			items := make([]templ.Component, 0, len(props.Items))
			for _, item := range props.Items {
				items = append(items, UsageItem(item))
			}
			content = base.El("div", base.Attrs{"class": "flex flex-col gap-4"}, items...)
		}
		return base.El("section", base.Attrs{
			"id":       "usage-section",
			"class":    "portal-section mb-12",
			"role":     "grid",
			"tabindex": "-1",
		},
			SectionTitle(pg.T("Usage.Title")),
			content,
		)
	})
}

func UsageItem(item viewmodels.UsageItem) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		head := base.El("div", base.Attrs{"class": "usage-item-head flex items-center justify-between"},
			base.El("div", nil,
				base.Typography(base.TypographyProps{Variant: base.BodyHl, Color: base.Grey700}, base.Text(item.Name)),
				base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(item.PlanCode)),
			),
			base.When(!item.Failed, base.El("div", base.Attrs{"class": "text-right"},
				base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(pg.T("Usage.Period")+": "+item.Period)),
				base.Typography(base.TypographyProps{Variant: base.BodyHl, Color: base.Grey700, Attrs: base.Attrs{"data-role": "total"}}, base.Text(item.Total)),
			)),
		)

		var body templ.Component
		switch {
		case item.Failed:
			body = base.Typography(base.TypographyProps{Variant: base.Caption, Color: base.ColorDanger, Attrs: base.Attrs{"data-role": "failed"}}, base.Text(pg.T("Usage.Failed")))
		case len(item.Charges) == 0:
			body = base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(pg.T("Usage.NoCharges")))
		default:
			charges := make([]templ.Component, 0, len(item.Charges))
			for _, c := range item.Charges {
				charges = append(charges, base.El("div", base.Attrs{"class": "usage-charge flex items-center justify-between", "data-charge": c.Code},
					base.El("div", nil,
						base.Typography(base.TypographyProps{Color: base.Grey700}, base.Text(c.Name)),
						base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(c.Units+" "+pg.T("Usage.Units"))),
					),
					base.Typography(base.TypographyProps{Color: base.Grey700}, base.Text(c.Amount)),
				))
			}
			charges = append(charges,
				usageTotalLine(pg.T("Usage.Amount"), item.Amount),
				usageTotalLine(pg.T("Usage.Taxes"), item.Taxes),
			)
			body = base.El("div", base.Attrs{"class": "flex flex-col gap-2"}, charges...)
		}

		return base.El("article", base.Attrs{"class": "usage-item", "data-subscription-id": item.SubscriptionID},
			head,
			body,
		)
	})
}

func usageTotalLine(label, amount string) templ.Component {
	return base.El("div", base.Attrs{"class": "flex items-center justify-between"},
		base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(label)),
		base.Typography(base.TypographyProps{Variant: base.Caption}, base.Text(amount)),
	)
}

func UsageItemSkeleton() templ.Component {
	return base.El("div", base.Attrs{"class": "usage-item", "data-skeleton-item": "usage"},
		base.El("div", base.Attrs{"class": "flex items-center justify-between"},
			base.El("div", base.Attrs{"class": "flex items-center gap-3"},
				base.Skeleton(base.SkeletonProps{Variant: base.SkeletonConnectorAvatar, Size: "large"}),
				base.El("div", base.Attrs{"class": "flex flex-col gap-2"},
					base.Skeleton(base.SkeletonProps{Width: 240}),
					base.Skeleton(base.SkeletonProps{Width: 120}),
				),
			),
			base.Skeleton(base.SkeletonProps{Width: 80}),
		),
	)
}

func UsageSkeleton() templ.Component {
	return base.El("div", base.Attrs{"class": "flex flex-col gap-4"},
		UsageItemSkeleton(),
		UsageItemSkeleton(),
		UsageItemSkeleton(),
	)
}

package portal

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/viewmodels"
	"github.com/iota-uz/billing-portal/pkg/types"
)

type DebuggerProps struct {
	Base   string
	Page   viewmodels.EventPage
	Failed bool
}

func (p DebuggerProps) nextURL() string {
	next := p.Page.Next
	values := url.Values{}
	values.Set("page", strconv.Itoa(next.Page))
	values.Set("offset", strconv.Itoa(next.Offset))
	if next.After != "" {
		values.Set("after", next.After)
	}
	for _, d := range next.Dates {
		values.Add("date", d)
	}
	if next.Selected != "" {
		values.Set("selected", next.Selected)
	}
	return withQuery(p.Base+"/events", values)
}

// DebuggerSection is the debugger frame with its first page of events.
func DebuggerSection(props DebuggerProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		refresh := base.Button(base.ButtonProps{
			Variant: base.ButtonQuaternary,
			Size:    base.ButtonSmall,
			Icon:    icons.ArrowClockwise(icons.Props{Size: "16"}),
			Label:   pg.T("Debugger.Refresh"),
			Attrs: base.Attrs{
				"data-action": "refresh",
				"hx-get":      props.Base + "/events",
				"hx-target":   "#debugger-section",
				"hx-swap":     "outerHTML",
			},
		})
		title := SectionTitle(pg.T("Debugger.Title"), refresh)

		if props.Failed {
			return section("debugger-section", title, ErrorPlaceholder())
		}
		var list templ.Component
		if props.Page.Empty() {
			list = base.Typography(base.TypographyProps{Attrs: base.Attrs{"data-empty": "events"}}, base.Text(pg.T("Debugger.Empty")))
		} else {
			list = base.El("div", base.Attrs{
				"id":              "event-list",
				"class":           "event-list",
				"role":            "grid",
				"tabindex":        "-1",
				"data-event-list": "true",
			}, EventBatch(props))
		}
		return section("debugger-section",
			title,
			base.El("div", base.Attrs{"class": "debugger"},
				base.El("div", base.Attrs{"class": "debugger-events"}, list),
			),
		)
	})
}

// EventBatch renders one page of grouped events and, when more pages exist,
// the sentinel that fetches the next one in its place.
func EventBatch(props DebuggerProps) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		children := make([]templ.Component, 0, len(props.Page.Groups)+1)
		for _, g := range props.Page.Groups {
			children = append(children, eventGroup(pg, g))
		}
		if props.Page.Next != nil {
			children = append(children, base.InfiniteScroll(base.InfiniteScrollProps{
				URL: props.nextURL(),
			}, base.Group(EventItemSkeleton(), EventItemSkeleton(), EventItemSkeleton())))
		}
		return base.Group(children...)
	})
}

// eventGroup renders a date bucket. A continued bucket is appended out of
// band to the group a previous page rendered for the same date.
func eventGroup(pg types.PageContextProvider, g viewmodels.EventGroup) templ.Component {
	items := make([]templ.Component, 0, len(g.Events)+1)
	if g.Continued {
		for _, ev := range g.Events {
			items = append(items, eventEntry(pg, ev))
		}
		return base.El("div", base.Attrs{"id": groupID(g.Date), "hx-swap-oob": "beforeend"}, items...)
	}
	items = append(items, base.El("div", base.Attrs{"class": "date-header", "data-date-header": g.Date},
		base.Typography(base.TypographyProps{Variant: base.CaptionHl, Color: base.Grey500}, base.Text(g.Date)),
	))
	for _, ev := range g.Events {
		items = append(items, eventEntry(pg, ev))
	}
	return base.El("div", base.Attrs{"id": groupID(g.Date), "class": "event-group", "data-date": g.Date}, items...)
}

// groupID turns "Mar. 04, 2024" into "event-group-mar-04-2024".
func groupID(date string) string {
	var b strings.Builder
	b.WriteString("event-group")
	dash := true
	for _, r := range strings.ToLower(date) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

func eventEntry(pg types.PageContextProvider, ev viewmodels.Event) templ.Component {
	selected := "false"
	rowClass := "event-row"
	detailsAttrs := base.Attrs{"class": "event-details", "data-event-details": ev.ID}
	if ev.Selected {
		selected = "true"
		rowClass = base.Cn(rowClass, "selected")
	} else {
		detailsAttrs["hidden"] = "hidden"
	}

	var marker templ.Component
	if ev.HasWarning() {
		marker = base.Tooltip(pg.T("Debugger.Warnings.Row"), base.TooltipTop,
			base.El("span", base.Attrs{"class": "text-yellow-700", "data-role": "warning"}, icons.Warning(icons.Props{Size: "16"})),
		)
	} else {
		marker = base.El("span", base.Attrs{"class": "event-dot", "aria-hidden": "true"})
	}

	return base.El("div", base.Attrs{"class": "event-entry"},
		base.El("div", base.Attrs{
			"id":            "event-item-" + strconv.Itoa(ev.Index),
			"class":         rowClass,
			"data-id":       ev.ID,
			"data-selected": selected,
			"aria-selected": selected,
			"role":          "row",
			"tabindex":      "0",
		},
			base.El("div", base.Attrs{"class": "flex items-center gap-3"},
				marker,
				base.Typography(base.TypographyProps{Variant: base.CaptionCode, Color: base.Grey700, NoWrap: true}, base.Text(ev.Code)),
			),
			base.Typography(base.TypographyProps{Variant: base.Caption, NoWrap: true}, base.Text(ev.Time)),
		),
		base.El("div", detailsAttrs, EventDetails(ev)),
	)
}

// EventDetails is the side panel of the selected event.
func EventDetails(ev viewmodels.Event) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		title := ev.BillableMetricName
		if title == "" {
			title = ev.Code
		}
		var warnings []templ.Component
		if !ev.MatchBillableMetric {
			warnings = append(warnings, warningBox("no-metric", pg.T("Debugger.Warnings.NoMetric")))
		} else if !ev.MatchCustomField {
			warnings = append(warnings, warningBox("no-custom-field", pg.T("Debugger.Warnings.NoCustomField")))
		}

		field := func(key, value string) templ.Component {
			if value == "" {
				return nil
			}
			return base.El("div", base.Attrs{"class": "detail-field", "data-field": key},
				base.Typography(base.TypographyProps{Variant: base.Caption, Tag: "dt"}, base.Text(pg.T("Debugger.Fields."+key))),
				base.Typography(base.TypographyProps{Variant: base.Caption, Color: base.Grey700, Tag: "dd"}, base.Text(value)),
			)
		}
		return base.Group(
			base.El("div", base.Attrs{"class": "details-head"},
				base.Typography(base.TypographyProps{Variant: base.BodyHl, NoWrap: true}, base.Text(title)),
			),
			base.When(len(warnings) > 0, base.El("div", base.Attrs{"class": "flex flex-col gap-2 px-8 pt-6"}, warnings...)),
			base.El("dl", base.Attrs{"class": "details-fields"},
				field("Timestamp", ev.Timestamp),
				field("ReceivedAt", ev.ReceivedAt),
				field("TransactionID", ev.TransactionID),
				field("ExternalCustomerID", ev.ExternalCustomerID),
				field("ExternalSubscriptionID", ev.ExternalSubscriptionID),
				field("BillableMetric", ev.BillableMetricName),
				field("APIClient", ev.APIClient),
				field("IPAddress", ev.IPAddress),
			),
			base.El("div", base.Attrs{"class": "details-payload"},
				base.Typography(base.TypographyProps{Variant: base.CaptionHl, Class: "mb-2"}, base.Text(pg.T("Debugger.Fields.Payload"))),
				Payload(ev.Payload),
			),
		)
	})
}

func warningBox(key, text string) templ.Component {
	return base.El("div", base.Attrs{"class": "warning-box flex items-center gap-2", "data-warning": key},
		icons.Warning(icons.Props{Size: "16"}),
		base.Typography(base.TypographyProps{Variant: base.Caption, Color: base.ColorWarning}, base.Text(text)),
	)
}

func EventItemSkeleton() templ.Component {
	return base.El("div", base.Attrs{"class": "event-row", "data-skeleton-item": "event"},
		base.El("div", base.Attrs{"class": "flex items-center gap-3"},
			base.Skeleton(base.SkeletonProps{Variant: base.SkeletonConnectorAvatar, Size: "medium"}),
			base.Skeleton(base.SkeletonProps{Width: 120}),
		),
		base.Skeleton(base.SkeletonProps{Width: 64}),
	)
}

// DebuggerSkeleton is shown before the first page arrives: a date header,
// three event rows and the side panel skeleton.
func DebuggerSkeleton() templ.Component {
	rows := make([]templ.Component, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, base.El("div", base.Attrs{"class": "flex items-center gap-16"},
			base.Skeleton(base.SkeletonProps{Width: 80}),
			base.Skeleton(base.SkeletonProps{Width: 240}),
		))
	}
	return base.El("div", base.Attrs{"class": "debugger"},
		base.El("div", base.Attrs{"class": "debugger-events"},
			base.El("div", base.Attrs{"class": "date-header"}),
			EventItemSkeleton(),
			EventItemSkeleton(),
			EventItemSkeleton(),
		),
		base.El("div", base.Attrs{"class": "debugger-side", "data-side-skeleton": "true"},
			base.El("div", base.Attrs{"class": "details-head"}, base.Skeleton(base.SkeletonProps{Width: 180})),
			base.El("div", base.Attrs{"class": "flex flex-col gap-7 px-8 py-10"}, rows...),
		),
	)
}

// Package portal renders the customer portal page and its lazily loaded sections.
package portal

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/iota-uz/billing-portal/components/base"
	"github.com/iota-uz/billing-portal/modules/portal/presentation/assets"
	"github.com/iota-uz/billing-portal/pkg/composables"
	"github.com/iota-uz/billing-portal/pkg/types"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// withPage resolves the page context at render time.
func withPage(fn func(pg types.PageContextProvider) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(composables.UsePageCtx(ctx).Namespace("Portal")).Render(ctx, w)
	})
}

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// Document is the html skeleton shared by the portal page and error pages.
func Document(title string, body ...templ.Component) templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		return base.Group(
			raw("<!DOCTYPE html>"),
			base.El("html", base.Attrs{"lang": pg.GetLocale().String()},
				base.El("head", nil,
					base.Void("meta", base.Attrs{"charset": "utf-8"}),
					base.Void("meta", base.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
					base.El("title", nil, base.Text(title)),
					base.Void("link", base.Attrs{"rel": "stylesheet", "href": assets.Path("css/portal.css")}),
					base.El("script", base.Attrs{"src": htmxSrc, "defer": "defer"}),
					base.El("script", base.Attrs{"src": assets.Path("js/portal.js"), "defer": "defer"}),
				),
				base.El("body", base.Attrs{"class": "bg-white text-grey-600"}, body...),
			),
		)
	})
}

// SectionTitle is the header bar at the top of every section.
func SectionTitle(title string, actions ...templ.Component) templ.Component {
	return base.El("div", base.Attrs{"class": "section-header flex items-center justify-between mb-6"},
		base.Typography(base.TypographyProps{Variant: base.Subhead, Color: base.Grey700, Tag: "h2"}, base.Text(title)),
		base.When(len(actions) > 0, base.El("div", base.Attrs{"class": "flex items-center gap-2"}, actions...)),
	)
}

// ErrorPlaceholder is shown in place of a section whose query failed.
func ErrorPlaceholder() templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		return base.GenericPlaceholder(base.PlaceholderProps{
			Title:         pg.T("Errors.Title"),
			Subtitle:      pg.T("Errors.Subtitle"),
			ButtonTitle:   pg.T("Errors.Reload"),
			ButtonVariant: base.ButtonPrimary,
			ButtonAction:  "location.reload()",
		})
	})
}

// NotFound is the full page rendered for unknown routes.
func NotFound() templ.Component {
	return withPage(func(pg types.PageContextProvider) templ.Component {
		return Document(pg.T("Errors.NotFoundTitle"),
			base.El("main", base.Attrs{"class": "portal mx-auto max-w-5xl px-4 py-20"},
				base.GenericPlaceholder(base.PlaceholderProps{
					Title:    pg.T("Errors.NotFoundTitle"),
					Subtitle: pg.T("Errors.NotFoundSubtitle"),
				}),
			),
		)
	})
}

// lazySection renders a slot fetched by htmx on load, showing loading until then.
func lazySection(id, src string, loading ...templ.Component) templ.Component {
	return base.El("section", base.Attrs{
		"id":         id,
		"class":      "portal-section mb-12",
		"hx-get":     src,
		"hx-trigger": "load",
		"hx-swap":    "outerHTML",
		"aria-busy":  "true",
	}, loading...)
}

// section is the loaded counterpart of lazySection.
func section(id string, children ...templ.Component) templ.Component {
	return base.El("section", base.Attrs{"id": id, "class": "portal-section mb-12"}, children...)
}

package base

import (
	"github.com/a-h/templ"
)

type InfiniteScrollProps struct {
	// URL is fetched once the sentinel scrolls into view.
	URL string
	// Include is an optional hx-include selector.
	Include string
	Class   string
}

// InfiniteScroll renders a sentinel that replaces itself with the next page.
// loading is shown while the request is in flight.
func InfiniteScroll(props InfiniteScrollProps, loading templ.Component) templ.Component {
	attrs := Attrs{
		"class":           Cn("infinite-scroll", props.Class),
		"data-fetch-more": "true",
		"hx-get":          props.URL,
		"hx-swap":         "outerHTML",
		"hx-trigger":      "revealed",
		"hx-disinherit":   "*",
	}.With("hx-include", props.Include)
	return El("div", attrs, loading)
}

package base

import (
	"github.com/a-h/templ"
)

type TooltipPlacement string

const (
	TooltipTop    TooltipPlacement = "top"
	TooltipBottom TooltipPlacement = "bottom"
)

// Tooltip shows title on hover or focus of child. Pure CSS, no script.
func Tooltip(title string, placement TooltipPlacement, child templ.Component) templ.Component {
	position := "bottom-full mb-2"
	if placement == TooltipBottom {
		position = "top-full mt-2"
	}
	return El("span", Attrs{"class": "group relative inline-flex"},
		child,
		El("span", Attrs{
			"role":  "tooltip",
			"class": Cn("pointer-events-none absolute left-1/2 z-10 -translate-x-1/2 whitespace-nowrap rounded-lg bg-grey-700 px-2 py-1 text-xs text-white opacity-0 transition-opacity group-hover:opacity-100 group-focus-within:opacity-100", position),
		}, Text(title)),
	)
}

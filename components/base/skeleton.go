package base

import (
	"fmt"

	"github.com/a-h/templ"
)

type SkeletonVariant string

const (
	SkeletonText            SkeletonVariant = "text"
	SkeletonCircular        SkeletonVariant = "circular"
	SkeletonConnectorAvatar SkeletonVariant = "connectorAvatar"
)

type SkeletonProps struct {
	Variant SkeletonVariant
	Width   int
	Height  int
	// Size applies to avatar variants: small, medium or large.
	Size  string
	Class string
}

var avatarSizes = map[string]int{"small": 16, "medium": 24, "large": 40}

func Skeleton(props SkeletonProps) templ.Component {
	class := "animate-pulse bg-grey-100"
	width, height := props.Width, props.Height
	switch props.Variant {
	case SkeletonCircular:
		class = Cn(class, "rounded-full")
	case SkeletonConnectorAvatar:
		size, ok := avatarSizes[props.Size]
		if !ok {
			size = avatarSizes["medium"]
		}
		width, height = size, size
		class = Cn(class, "rounded-lg")
	default:
		class = Cn(class, "rounded-full")
		if height == 0 {
			height = 12
		}
	}

	style := ""
	if width > 0 {
		style += fmt.Sprintf("width:%dpx;", width)
	}
	if height > 0 {
		style += fmt.Sprintf("height:%dpx;", height)
	}
	return El("div", Attrs{
		"aria-hidden":   "true",
		"class":         Cn(class, props.Class),
		"data-skeleton": string(props.Variant),
	}.With("style", style))
}

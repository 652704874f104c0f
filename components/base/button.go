package base

import (
	"github.com/a-h/templ"
)

type ButtonVariant string

const (
	ButtonPrimary    ButtonVariant = "primary"
	ButtonSecondary  ButtonVariant = "secondary"
	ButtonTertiary   ButtonVariant = "tertiary"
	ButtonQuaternary ButtonVariant = "quaternary"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonPrimary:    "bg-primary-600 text-white hover:bg-primary-700",
	ButtonSecondary:  "bg-primary-100 text-primary-600 hover:bg-primary-200",
	ButtonTertiary:   "bg-grey-100 text-grey-600 hover:bg-grey-200",
	ButtonQuaternary: "bg-transparent text-grey-600 hover:bg-grey-100",
}

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSmall:  "h-8 px-2 text-sm",
	ButtonMedium: "h-10 px-3 text-base",
	ButtonLarge:  "h-12 px-4 text-base",
}

type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Icon    templ.Component
	Label   string
	// Href renders an anchor instead of a button.
	Href  string
	Class string
	Attrs Attrs
}

func Button(props ButtonProps) templ.Component {
	variant := props.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := props.Size
	if size == "" {
		size = ButtonMedium
	}
	class := Cn(
		"inline-flex items-center justify-center gap-2 rounded-xl font-medium transition-colors",
		buttonVariantClasses[variant],
		buttonSizeClasses[size],
	)
	attrs := Attrs{"data-variant": string(variant)}.Merge(props.Attrs)
	attrs["class"] = Cn(class, attrs["class"], props.Class)
	if props.Label == "" && props.Icon != nil {
		attrs["class"] = Cn(attrs["class"], "px-0 aspect-square")
	}

	var label templ.Component
	if props.Label != "" {
		label = El("span", nil, Text(props.Label))
	}
	if props.Href != "" {
		return El("a", attrs.With("href", props.Href), props.Icon, label)
	}
	if _, ok := attrs["type"]; !ok {
		attrs["type"] = "button"
	}
	return El("button", attrs, props.Icon, label)
}

package base

import (
	"github.com/a-h/templ"
)

type TypographyVariant string

const (
	Headline    TypographyVariant = "headline"
	Subhead     TypographyVariant = "subhead"
	BodyHl      TypographyVariant = "bodyHl"
	Body        TypographyVariant = "body"
	CaptionHl   TypographyVariant = "captionHl"
	Caption     TypographyVariant = "caption"
	CaptionCode TypographyVariant = "captionCode"
)

type TypographyColor string

const (
	ColorDefault TypographyColor = ""
	Grey700      TypographyColor = "grey700"
	Grey600      TypographyColor = "grey600"
	Grey500      TypographyColor = "grey500"
	ColorPrimary TypographyColor = "primary"
	ColorDanger  TypographyColor = "danger"
	ColorWarning TypographyColor = "warning"
	ColorSuccess TypographyColor = "success"
)

var variantClasses = map[TypographyVariant]string{
	Headline:    "text-2xl font-semibold leading-8",
	Subhead:     "text-lg font-semibold leading-7",
	BodyHl:      "text-base font-medium leading-6",
	Body:        "text-base font-normal leading-6",
	CaptionHl:   "text-sm font-medium leading-5",
	Caption:     "text-sm font-normal leading-5",
	CaptionCode: "text-sm font-mono leading-5",
}

var colorClasses = map[TypographyColor]string{
	ColorDefault: "text-grey-600",
	Grey700:      "text-grey-700",
	Grey600:      "text-grey-600",
	Grey500:      "text-grey-500",
	ColorPrimary: "text-primary-600",
	ColorDanger:  "text-red-600",
	ColorWarning: "text-yellow-700",
	ColorSuccess: "text-green-600",
}

type TypographyProps struct {
	Variant TypographyVariant
	Color   TypographyColor
	// Tag defaults to div.
	Tag    string
	NoWrap bool
	Class  string
	Attrs  Attrs
}

func Typography(props TypographyProps, children ...templ.Component) templ.Component {
	variant := props.Variant
	if variant == "" {
		variant = Body
	}
	tag := props.Tag
	if tag == "" {
		tag = "div"
	}
	color := props.Color
	if color == ColorDefault && (variant == Headline || variant == Subhead || variant == BodyHl) {
		color = Grey700
	}
	class := Cn(variantClasses[variant], colorClasses[color])
	if props.NoWrap {
		class = Cn(class, "truncate")
	}
	attrs := Attrs{"data-variant": string(variant)}.Merge(props.Attrs)
	attrs["class"] = Cn(class, attrs["class"], props.Class)
	return El(tag, attrs, children...)
}

// Label is Typography with a single text child.
func Label(variant TypographyVariant, text string) templ.Component {
	return Typography(TypographyProps{Variant: variant}, Text(text))
}

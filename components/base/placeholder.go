package base

import (
	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"
)

type PlaceholderProps struct {
	Title         string
	Subtitle      string
	ButtonTitle   string
	ButtonVariant ButtonVariant
	// ButtonAction is inline script run on click, e.g. location.reload().
	ButtonAction string
	Image        templ.Component
	Class        string
}

// GenericPlaceholder is the empty or error state of a section.
func GenericPlaceholder(props PlaceholderProps) templ.Component {
	image := props.Image
	if image == nil {
		image = ErrorImage()
	}
	var button templ.Component
	if props.ButtonTitle != "" {
		button = Button(ButtonProps{
			Variant: props.ButtonVariant,
			Label:   props.ButtonTitle,
			Attrs:   Attrs{"data-action": "placeholder"}.With("onclick", props.ButtonAction),
		})
	}
	return El("div", Attrs{
		"class":            Cn("flex max-w-md flex-col items-start gap-3 py-12", props.Class),
		"data-placeholder": "true",
	},
		El("div", Attrs{"class": "mb-2"}, image),
		Typography(TypographyProps{Variant: Subhead, Attrs: Attrs{"data-role": "title"}}, Text(props.Title)),
		When(props.Subtitle != "", Typography(TypographyProps{Attrs: Attrs{"data-role": "subtitle"}}, Text(props.Subtitle))),
		button,
	)
}

func ErrorImage() templ.Component {
	return El("div", Attrs{"class": "text-red-500", "aria-hidden": "true"},
		icons.Warning(icons.Props{Size: "104"}),
	)
}

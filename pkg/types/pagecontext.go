package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContextProvider gives templates access to translations and request metadata.
type PageContextProvider interface {
	// T translates a message ID to the current locale with optional template data.
	// If a prefix was set via Namespace(), it will be prepended to the message ID.
	T(key string, args ...map[string]interface{}) string

	// TSafe is like T but returns an empty string on error instead of panicking.
	TSafe(key string, args ...map[string]interface{}) string

	// Namespace returns a new PageContextProvider with the specified prefix.
	Namespace(prefix string) PageContextProvider

	// ToJSLocale converts the page locale to a JavaScript-compatible locale string.
	ToJSLocale() string

	GetLocale() language.Tag
	GetURL() *url.URL
	GetLocalizer() *i18n.Localizer
}

type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
	prefix    string
}

var _ PageContextProvider = (*PageContext)(nil)

func (p *PageContext) messageID(k string) string {
	if p.prefix != "" {
		return p.prefix + "." + k
	}
	return k
}

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}
	if len(args) == 0 {
		return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: p.messageID(k)})
	}
	return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: p.messageID(k), TemplateData: args[0]})
}

func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	cfg := &i18n.LocalizeConfig{MessageID: p.messageID(k)}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}

	result, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}
	return result
}

func (p *PageContext) Namespace(prefix string) PageContextProvider {
	return &PageContext{
		Locale:    p.Locale,
		URL:       p.URL,
		Localizer: p.Localizer,
		prefix:    p.messageID(prefix),
	}
}

// Unknown locales default to "en-US".
func (p *PageContext) ToJSLocale() string {
	switch p.Locale.String() {
	case "en", "en-US":
		return "en-US"
	case "en-GB":
		return "en-GB"
	case "fr", "fr-FR":
		return "fr-FR"
	case "fr-CA":
		return "fr-CA"
	default:
		return "en-US"
	}
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}

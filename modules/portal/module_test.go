package portal

import (
	"sort"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/billing-portal/pkg/application"
)

func messageIDs(t *testing.T, file string) []string {
	t.Helper()
	data, err := LocaleFiles.ReadFile(file)
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, toml.Unmarshal(data, &tree))

	var ids []string
	var walk func(prefix string, node map[string]any)
	walk = func(prefix string, node map[string]any) {
		for key, value := range node {
			if child, ok := value.(map[string]any); ok {
				walk(prefix+key+".", child)
				continue
			}
			ids = append(ids, prefix+key)
		}
	}
	walk("", tree)
	sort.Strings(ids)
	return ids
}

func TestLocaleFiles(t *testing.T) {
	app := application.New(&application.ApplicationOptions{})
	app.RegisterLocaleFiles(&LocaleFiles)

	for lang, want := range map[string]string{"en": "Events", "fr": "Événements"} {
		msg, err := i18n.NewLocalizer(app.Bundle(), lang).Localize(&i18n.LocalizeConfig{MessageID: "Portal.Debugger.Title"})
		require.NoError(t, err, lang)
		require.Equal(t, want, msg, lang)
	}

	en := messageIDs(t, "presentation/locales/en.toml")
	require.NotEmpty(t, en)
	require.Equal(t, en, messageIDs(t, "presentation/locales/fr.toml"))
}

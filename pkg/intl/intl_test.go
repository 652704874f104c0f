package intl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGetSupportedLanguages(t *testing.T) {
	require.Len(t, GetSupportedLanguages(nil), 2)

	filtered := GetSupportedLanguages([]string{"fr", "xx", "en"})
	require.Len(t, filtered, 2)
	require.Equal(t, "fr", filtered[0].Code)
	require.Equal(t, language.English, filtered[1].Tag)
}

func TestLocaleContext(t *testing.T) {
	ctx := context.Background()
	_, ok := UseLocale(ctx)
	require.False(t, ok)
	_, ok = UseLocalizer(ctx)
	require.False(t, ok)

	ctx = WithLocale(ctx, language.French)
	tag, ok := UseLocale(ctx)
	require.True(t, ok)
	require.Equal(t, language.French, tag)
}

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	return tr
}

func TestT_GermanSearchFound(t *testing.T) {
	tr := newTranslator(t)

	got := tr.T("de", "search.found", map[string]any{"count": 3})
	assert.Equal(t, "3 Artikel gefunden", got)
}

func TestT_EnglishInterpolation(t *testing.T) {
	tr := newTranslator(t)

	got := tr.T("en", "search.searching", map[string]any{
		"query":    "climate",
		"language": "en",
	})
	assert.Equal(t, "Searching for 'climate' (en)...", got)
}

func TestT_NoVars(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Goodbye!", tr.T("en", "app.goodbye", nil))
	assert.Equal(t, "Auf Wiedersehen!", tr.T("de", "app.goodbye", nil))
}

func TestT_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	tr := newTranslator(t)

	got := tr.T("fr", "app.goodbye", nil)
	assert.Equal(t, "Goodbye!", got)
}

func TestT_MissingKeyIsVisible(t *testing.T) {
	tr := newTranslator(t)

	got := tr.T("en", "search.nonexistent_key", nil)
	assert.Equal(t, "[missing translation: search.nonexistent_key]", got)
}

func TestT_KeyMissingFromGermanFallsBackToEnglish(t *testing.T) {
	tr := newTranslator(t)

	// Every key present in en must resolve in de, either natively or via
	// fallback; a key absent from both yields the marker instead.
	got := tr.T("de", "display.no_title", nil)
	assert.NotContains(t, got, "missing translation")
}

func TestSupported(t *testing.T) {
	tr := newTranslator(t)

	assert.True(t, tr.Supported("en"))
	assert.True(t, tr.Supported("de"))
	assert.False(t, tr.Supported("fr"))
	assert.ElementsMatch(t, []string{"en", "de"}, tr.Languages())
}

func TestT_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	tr := newTranslator(t)

	got := tr.T("en", "search.found", map[string]any{"wrong": 3})
	assert.Equal(t, "{count} articles found", got)
}

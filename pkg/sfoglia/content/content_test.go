package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

func TestHomeContainsCounterElements(t *testing.T) {
	pages, err := NewPages("en")
	require.NoError(t, err)

	out := pages.Home()
	assert.Contains(t, out, `id="`+constants.CounterButtonID+`"`)
	assert.Contains(t, out, `id="`+constants.CounterValueID+`"`)
	assert.Contains(t, out, `href="/about"`)
}

func TestAboutLinksHome(t *testing.T) {
	pages, err := NewPages("en")
	require.NoError(t, err)

	assert.Contains(t, pages.About(), `href="/"`)
}

func TestNotFoundEchoesPath(t *testing.T) {
	pages, err := NewPages("en")
	require.NoError(t, err)

	assert.Contains(t, pages.NotFound("/missing"), "/missing")
}

func TestNotFoundEscapesPath(t *testing.T) {
	pages, err := NewPages("en")
	require.NoError(t, err)

	out := pages.NotFound(`/<script>`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestItalianLocale(t *testing.T) {
	pages, err := NewPages("it")
	require.NoError(t, err)

	assert.Contains(t, pages.Home(), "Benvenuto")
	assert.Contains(t, pages.NotFound("/x"), "Nessuna pagina registrata")
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	pages, err := NewPages("de")
	require.NoError(t, err)

	assert.Contains(t, pages.Home(), "Welcome")
}

func TestMalformedLocale(t *testing.T) {
	_, err := NewPages("not a locale!")
	assert.Error(t, err)
}

func TestErrorPanel(t *testing.T) {
	pages, err := NewPages("en")
	require.NoError(t, err)

	out := pages.ErrorPanel(errors.New("boom"))
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "location.reload()")

	assert.Contains(t, pages.ErrorPanel(nil), "unknown error")
}

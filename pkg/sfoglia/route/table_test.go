package route_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

func page(markup string) route.Handler {
	return func() string { return markup }
}

func TestResolveRegistered(t *testing.T) {
	table := route.NewTable().
		Register("/", page("<p>Home</p>")).
		Register("/about", page("<p>About</p>"))

	assert.Equal(t, "<p>Home</p>", table.Resolve("/")())
	assert.Equal(t, "<p>About</p>", table.Resolve("/about")())
}

func TestRegisterOverwrites(t *testing.T) {
	table := route.NewTable().
		Register("/", page("old")).
		Register("/", page("new"))

	assert.Equal(t, "new", table.Resolve("/")())
	assert.Equal(t, 1, table.Len())
}

func TestResolveUnregisteredEchoesPath(t *testing.T) {
	table := route.NewTable().Register("/", page("home"))

	for _, path := range []string{"/missing", "/deeply/nested", "/about?x=1"} {
		out := table.Resolve(path)()
		assert.Contains(t, out, path, "not-found output must contain the requested path")
	}
}

func TestResolveExactMatchOnly(t *testing.T) {
	table := route.NewTable().Register("/about", page("about"))

	// No trailing-slash normalization, no case folding, no patterns.
	for _, path := range []string{"/about/", "/About", "/about/x", "about"} {
		out := table.Resolve(path)()
		assert.NotEqual(t, "about", out, "path %q must not match /about", path)
	}
}

func TestOnNotFound(t *testing.T) {
	table := route.NewTable().OnNotFound(func(path string) string {
		return "gone: " + path
	})

	assert.Equal(t, "gone: /x", table.Resolve("/x")())

	// nil restores the default fallback.
	table.OnNotFound(nil)
	assert.True(t, strings.Contains(table.Resolve("/x")(), "/x"))
}

func TestResolveNeverNil(t *testing.T) {
	table := route.NewTable()
	if h := table.Resolve("/anything"); h == nil {
		t.Fatal("Resolve returned nil handler")
	}
}

func TestPaths(t *testing.T) {
	table := route.NewTable().
		Register("/", page("")).
		Register("/about", page(""))

	assert.ElementsMatch(t, []string{"/", "/about"}, table.Paths())
}

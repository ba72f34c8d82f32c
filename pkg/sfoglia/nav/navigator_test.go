package nav_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/headless"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

const mountID = "app"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func demoTable() *route.Table {
	return route.NewTable().
		Register("/", func() string { return "<p>Home</p>" }).
		Register("/about", func() string { return "<p>About</p>" })
}

// started builds an environment with a mount at the given path and a
// running navigator over the demo table.
func started(t *testing.T, path string) (*headless.Env, *headless.MountNode, *nav.Navigator) {
	t.Helper()
	env := headless.New(path)
	mount := env.AddMount(mountID)
	n := nav.New(env, demoTable(), mountID, quietLogger())
	n.Start()
	return env, mount, n
}

func TestStartRendersInitialPath(t *testing.T) {
	_, mount, _ := started(t, "/about")
	assert.Equal(t, "<p>About</p>", mount.HTML())
}

func TestNavigatePushesAndRenders(t *testing.T) {
	env, mount, n := started(t, "/")
	require.Equal(t, 1, env.HistoryLen())

	n.Navigate("/about")
	n.Navigate("/")

	assert.Equal(t, 3, env.HistoryLen(), "two navigations push exactly two entries")
	assert.Equal(t, "<p>Home</p>", mount.HTML())
	assert.Equal(t, "/", env.CurrentPath())
}

func TestNavigateUnregisteredRendersNotFound(t *testing.T) {
	_, mount, n := started(t, "/")
	n.Navigate("/missing")
	assert.Contains(t, mount.HTML(), "/missing")
}

func TestPopStateRendersWithoutPush(t *testing.T) {
	env, mount, n := started(t, "/")
	n.Navigate("/about")
	lenBefore := env.HistoryLen()

	env.Back()

	assert.Equal(t, "/", env.CurrentPath())
	assert.Equal(t, "<p>Home</p>", mount.HTML())
	assert.Equal(t, lenBefore, env.HistoryLen(), "popstate must not change history length")

	env.Forward()

	assert.Equal(t, "<p>About</p>", mount.HTML())
	assert.Equal(t, lenBefore, env.HistoryLen())
}

func TestClickInAppAnchorIntercepted(t *testing.T) {
	env, mount, _ := started(t, "/")

	handled := env.Click(nav.Click{Href: "/about"})

	assert.True(t, handled, "in-app click must suppress default navigation")
	assert.Equal(t, "<p>About</p>", mount.HTML())
	assert.Equal(t, 2, env.HistoryLen())
	assert.Empty(t, env.DefaultedClicks())
}

func TestClickExternalNotIntercepted(t *testing.T) {
	env, mount, _ := started(t, "/")

	for _, href := range []string{"https://example.com", "http://example.com", "//cdn.example.com/x"} {
		handled := env.Click(nav.Click{Href: href})
		assert.False(t, handled, "external href %q must not be intercepted", href)
	}

	assert.Equal(t, "<p>Home</p>", mount.HTML(), "content unchanged")
	assert.Equal(t, 1, env.HistoryLen(), "no history entries pushed")
	assert.Len(t, env.DefaultedClicks(), 3)
}

func TestClickModifiedNotIntercepted(t *testing.T) {
	env, _, _ := started(t, "/")

	clicks := []nav.Click{
		{Href: "/about", Ctrl: true},
		{Href: "/about", Meta: true},
		{Href: "/about", Shift: true},
	}
	for _, c := range clicks {
		assert.False(t, env.Click(c), "modified click %+v must not be intercepted", c)
	}
	assert.Equal(t, 1, env.HistoryLen())
}

func TestClickOutsideAnchorIgnored(t *testing.T) {
	env, _, _ := started(t, "/")

	handled := env.Click(nav.Click{})

	assert.False(t, handled)
	assert.Equal(t, 1, env.HistoryLen())
}

func TestMissingMountSkipsRender(t *testing.T) {
	env := headless.New("/")
	// No mount registered on the page.
	n := nav.New(env, demoTable(), mountID, quietLogger())
	n.Start()

	n.Navigate("/about")

	assert.Equal(t, "/about", env.CurrentPath(), "history still advances")
	assert.Equal(t, 2, env.HistoryLen())
}

func TestOnRenderHook(t *testing.T) {
	env := headless.New("/")
	env.AddMount(mountID)

	var rendered []string
	n := nav.New(env, demoTable(), mountID, quietLogger()).
		OnRender(func(path string) { rendered = append(rendered, path) })
	n.Start()
	n.Navigate("/about")
	env.Back()

	assert.Equal(t, []string{"/", "/about", "/"}, rendered)
}

func TestHookRunsAfterMarkupAttached(t *testing.T) {
	env := headless.New("/")
	mount := env.AddMount(mountID)

	var seen string
	n := nav.New(env, demoTable(), mountID, quietLogger()).
		OnRender(func(string) { seen = mount.HTML() })
	n.Start()

	assert.Equal(t, "<p>Home</p>", seen, "hook must observe the new markup")
}

// The end-to-end flow from the routing contract: land on a deep link, click
// back home.
func TestEndToEnd(t *testing.T) {
	env := headless.New("/x")
	mount := env.AddMount(mountID)
	table := route.NewTable().
		Register("/", func() string { return "<p>Home</p>" }).
		Register("/x", func() string { return "<p>X</p>" })

	nav.New(env, table, mountID, quietLogger()).Start()
	require.Equal(t, "<p>X</p>", mount.HTML())
	require.Equal(t, 1, env.HistoryLen())

	handled := env.Click(nav.Click{Href: "/"})

	assert.True(t, handled)
	assert.Equal(t, "<p>Home</p>", mount.HTML())
	assert.Equal(t, 2, env.HistoryLen())
}

func TestClickHelpers(t *testing.T) {
	assert.True(t, nav.Click{Href: "http://x"}.External())
	assert.True(t, nav.Click{Href: "https://x"}.External())
	assert.True(t, nav.Click{Href: "//x"}.External())
	assert.False(t, nav.Click{Href: "/about"}.External())

	assert.True(t, nav.Click{Ctrl: true}.Modified())
	assert.True(t, nav.Click{Meta: true}.Modified())
	assert.True(t, nav.Click{Shift: true}.Modified())
	assert.False(t, nav.Click{}.Modified())
}

package nav

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

// Navigator owns a route table and a mount element, and turns navigation
// events from its environment into route renders.
//
// Navigate pushes a history entry before rendering; Render does not. The
// popstate handler installed by Start uses Render, so history-driven
// navigation never creates duplicate entries.
type Navigator struct {
	env      Environment
	table    *route.Table
	mount    Mount
	mountID  string
	log      *slog.Logger
	onRender []func(path string)
}

// New creates a Navigator over env and table, locating the mount element
// once by id. A missing mount is not an error: renders are skipped and
// logged until the page provides one.
func New(env Environment, table *route.Table, mountID string, log *slog.Logger) *Navigator {
	if log == nil {
		log = slog.Default()
	}
	n := &Navigator{
		env:     env,
		table:   table,
		mountID: mountID,
		log:     log,
	}
	if m, ok := env.MountByID(mountID); ok {
		n.mount = m
	} else {
		log.Error("mount element not found", "mount", mountID)
	}
	return n
}

// OnRender registers fn to run after each route render, once the new markup
// is attached. This is the hook for re-attaching listeners to elements the
// render just created.
func (n *Navigator) OnRender(fn func(path string)) *Navigator {
	n.onRender = append(n.onRender, fn)
	return n
}

// Table returns the navigator's route table.
func (n *Navigator) Table() *route.Table {
	return n.table
}

// Start installs the click and popstate interceptors and renders the
// environment's current path. Interceptors live for the page's lifetime;
// there is no Stop.
func (n *Navigator) Start() {
	n.env.OnClick(n.handleClick)
	n.env.OnPopState(func() {
		path := n.env.CurrentPath()
		n.log.Info("history navigation", "path", path)
		n.Render(path)
	})

	initial := n.env.CurrentPath()
	n.log.Info("navigator started", "path", initial, "mount", n.mountID)
	n.Render(initial)
}

// Navigate records path as a new history entry and renders it.
func (n *Navigator) Navigate(path string) {
	n.log.Info("navigate", "id", uuid.NewString(), "path", path)
	n.env.PushPath(path)
	n.Render(path)
}

// Render resolves path and replaces the mount's contents with the handler's
// markup, without touching history. With no mount present the render is
// skipped and logged.
func (n *Navigator) Render(path string) {
	markup := n.table.Resolve(path)()

	if n.mount == nil {
		n.log.Error("mount element missing, skipping render", "mount", n.mountID, "path", path)
		return
	}
	n.mount.SetHTML(markup)

	for _, fn := range n.onRender {
		fn(path)
	}
}

// handleClick implements the interception policy: in-app anchor clicks are
// claimed and routed, everything else falls through to default handling.
func (n *Navigator) handleClick(c Click) bool {
	if c.Href == "" {
		return false
	}
	if c.External() || c.Modified() {
		n.log.Debug("leaving click to default handling", "href", c.Href, "modified", c.Modified())
		return false
	}
	n.Navigate(c.Href)
	return true
}

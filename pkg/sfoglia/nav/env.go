// Package nav mediates between navigation events and the route table.
//
// Browser-global state (location, session history, the document click and
// popstate event sources) is abstracted behind the Environment interface so
// the navigation logic runs unchanged against a real DOM (platform/dom) or
// an in-memory fake (platform/headless).
//
// Everything in this package assumes the single event-loop goroutine of its
// environment; no locking is performed.
package nav

import "strings"

// Click describes a document click as delivered by an environment.
//
// Href is the href of the nearest enclosing anchor element, or "" when the
// click did not land inside an anchor (or the anchor has no href). Walking
// from the click target up to that anchor is the environment's job.
type Click struct {
	Href     string
	TargetID string // id of the element actually clicked, "" if none
	Ctrl     bool
	Meta     bool
	Shift    bool
}

// Modified reports whether any modifier key was held during the click.
// Modified clicks are left to default handling (open in new tab, etc.).
func (c Click) Modified() bool {
	return c.Ctrl || c.Meta || c.Shift
}

// External reports whether the href points outside the application:
// absolute URLs ("http...") and protocol-relative URLs ("//...").
func (c Click) External() bool {
	return strings.HasPrefix(c.Href, "http") || strings.HasPrefix(c.Href, "//")
}

// Mount is the container element whose contents are replaced on each
// navigation.
type Mount interface {
	// SetHTML replaces the mount's entire subtree with the given markup.
	SetHTML(markup string)
}

// Element is a node inside the currently rendered markup. Elements are
// discarded along with their listeners whenever the enclosing subtree is
// replaced.
type Element interface {
	SetText(text string)
	Text() string
	OnClick(fn func())
}

// ClickFunc handles a document click. Returning true claims the click and
// suppresses the environment's default handling; returning false lets the
// default proceed.
type ClickFunc func(Click) bool

// Environment is the navigation capability a Navigator is constructed over:
// current location, session history, the two event sources, and node lookup.
//
// Implementations deliver events and perform lookups on a single goroutine.
type Environment interface {
	// CurrentPath returns the path of the current location.
	CurrentPath() string

	// PushPath records path as a new session history entry and makes it the
	// current location, without reloading.
	PushPath(path string)

	// OnPopState registers fn to run when the user navigates via history
	// controls (back/forward). The current path has already changed when fn
	// runs.
	OnPopState(fn func())

	// OnClick registers fn for document-wide clicks.
	OnClick(fn ClickFunc)

	// MountByID locates a mount container. ok is false when no such element
	// exists.
	MountByID(id string) (m Mount, ok bool)

	// ElementByID locates an element inside the currently rendered markup.
	// ok is false when no such element exists.
	ElementByID(id string) (e Element, ok bool)
}

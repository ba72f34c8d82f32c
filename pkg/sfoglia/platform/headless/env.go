// Package headless provides an in-memory nav.Environment.
//
// It simulates the pieces of a browser the navigator touches: a current
// location, a back/forward session history, document click dispatch, and a
// toy document in which elements are discovered by scanning rendered markup
// for id attributes. It backs the navigator tests and the terminal demo.
//
// Like the real thing, it is meant to be driven from a single goroutine.
package headless

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
)

var idAttr = regexp.MustCompile(`id="([^"]+)"`)

// Env is an in-memory navigation environment.
type Env struct {
	path  string
	state string
	back  *nav.Stack
	fwd   *nav.Stack

	pops   []func()
	clicks []nav.ClickFunc

	mounts    map[string]*MountNode
	elements  map[string]*ElementNode
	defaulted []nav.Click
}

// New creates an environment whose current location is initialPath and
// whose session history contains that single entry.
func New(initialPath string) *Env {
	return &Env{
		path:     initialPath,
		state:    uuid.NewString(),
		back:     nav.NewStack(),
		fwd:      nav.NewStack(),
		mounts:   make(map[string]*MountNode),
		elements: make(map[string]*ElementNode),
	}
}

// CurrentPath returns the path of the current location.
func (e *Env) CurrentPath() string {
	return e.path
}

// PushPath records path as a new history entry, truncating any forward
// entries, exactly as a browser does on pushState.
func (e *Env) PushPath(path string) {
	e.back.Push(e.path, e.state)
	e.path = path
	e.state = uuid.NewString()
	e.fwd.Clear()
}

// OnPopState registers fn to run after Back or Forward changes the current
// location.
func (e *Env) OnPopState(fn func()) {
	e.pops = append(e.pops, fn)
}

// OnClick registers a document-wide click handler.
func (e *Env) OnClick(fn nav.ClickFunc) {
	e.clicks = append(e.clicks, fn)
}

// MountByID returns the mount registered under id.
func (e *Env) MountByID(id string) (nav.Mount, bool) {
	m, ok := e.mounts[id]
	return m, ok
}

// ElementByID returns the element with the given id in the currently
// rendered markup.
func (e *Env) ElementByID(id string) (nav.Element, bool) {
	el, ok := e.elements[id]
	return el, ok
}

// AddMount registers a mount container, as the host page's static markup
// would provide it.
func (e *Env) AddMount(id string) *MountNode {
	m := &MountNode{env: e, id: id}
	e.mounts[id] = m
	return m
}

// Click dispatches a simulated document click: the clicked element's own
// listeners fire first, then the document-wide handlers. It reports whether
// any document handler claimed the click; unclaimed clicks are recorded as
// left to default handling.
func (e *Env) Click(c nav.Click) bool {
	if c.TargetID != "" {
		if el, ok := e.elements[c.TargetID]; ok {
			el.trigger()
		}
	}

	handled := false
	for _, fn := range e.clicks {
		if fn(c) {
			handled = true
		}
	}
	if !handled {
		e.defaulted = append(e.defaulted, c)
	}
	return handled
}

// Back moves one entry back in the session history and fires the popstate
// handlers. With no earlier entry it does nothing.
func (e *Env) Back() {
	entry := e.back.Pop()
	if entry == nil {
		return
	}
	e.fwd.Push(e.path, e.state)
	e.path = entry.Path
	e.state = entry.State
	e.firePopState()
}

// Forward moves one entry forward in the session history and fires the
// popstate handlers. With no later entry it does nothing.
func (e *Env) Forward() {
	entry := e.fwd.Pop()
	if entry == nil {
		return
	}
	e.back.Push(e.path, e.state)
	e.path = entry.Path
	e.state = entry.State
	e.firePopState()
}

// HistoryLen returns the total number of session history entries,
// including the current one.
func (e *Env) HistoryLen() int {
	return e.back.Len() + 1 + e.fwd.Len()
}

// DefaultedClicks returns the clicks that no document handler claimed, in
// dispatch order.
func (e *Env) DefaultedClicks() []nav.Click {
	return e.defaulted
}

func (e *Env) firePopState() {
	for _, fn := range e.pops {
		fn()
	}
}

// rescan replaces the element set with the ids found in markup. Old nodes
// and their listeners are dropped, mirroring a subtree replacement.
func (e *Env) rescan(markup string) {
	e.elements = make(map[string]*ElementNode)
	for _, m := range idAttr.FindAllStringSubmatch(markup, -1) {
		id := m[1]
		e.elements[id] = &ElementNode{id: id}
	}
}

// MountNode is the headless mount container.
type MountNode struct {
	env  *Env
	id   string
	html string
}

// SetHTML replaces the mount's markup and rebuilds the element set from it.
func (m *MountNode) SetHTML(markup string) {
	m.html = markup
	m.env.rescan(markup)
}

// HTML returns the currently rendered markup.
func (m *MountNode) HTML() string {
	return m.html
}

// ElementNode is a headless document element.
type ElementNode struct {
	id       string
	text     string
	handlers []func()
}

// SetText replaces the element's text content.
func (el *ElementNode) SetText(text string) {
	el.text = text
}

// Text returns the element's text content.
func (el *ElementNode) Text() string {
	return el.text
}

// OnClick attaches a click listener to the element.
func (el *ElementNode) OnClick(fn func()) {
	el.handlers = append(el.handlers, fn)
}

func (el *ElementNode) trigger() {
	for _, fn := range el.handlers {
		fn()
	}
}

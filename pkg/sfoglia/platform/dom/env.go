//go:build js && wasm

// Package dom implements nav.Environment against the real browser DOM and
// History API via syscall/js. It only builds for js/wasm targets.
package dom

import (
	"syscall/js"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
)

// Env is the browser-backed navigation environment.
type Env struct {
	window   js.Value
	document js.Value
	history  js.Value
}

// New captures the browser globals. Call once, from the page's goroutine.
func New() *Env {
	window := js.Global().Get("window")
	return &Env{
		window:   window,
		document: window.Get("document"),
		history:  window.Get("history"),
	}
}

// CurrentPath returns window.location.pathname.
func (e *Env) CurrentPath() string {
	return e.window.Get("location").Get("pathname").String()
}

// PushPath records path via history.pushState without reloading.
func (e *Env) PushPath(path string) {
	e.history.Call("pushState", js.Null(), "", path)
}

// OnPopState registers fn on the window's popstate event. The listener
// lives for the page's lifetime; its js.Func is intentionally never
// released.
func (e *Env) OnPopState(fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	e.window.Call("addEventListener", "popstate", cb)
}

// OnClick registers fn as a document-wide click listener. When fn claims
// the click, the event's default handling is suppressed.
func (e *Env) OnClick(fn nav.ClickFunc) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		evt := args[0]
		if fn(clickFromEvent(evt)) {
			evt.Call("preventDefault")
		}
		return nil
	})
	e.document.Call("addEventListener", "click", cb)
}

// MountByID locates a mount container via getElementById.
func (e *Env) MountByID(id string) (nav.Mount, bool) {
	v := e.document.Call("getElementById", id)
	if !v.Truthy() {
		return nil, false
	}
	return &mountNode{el: v}, true
}

// ElementByID locates a rendered element via getElementById.
func (e *Env) ElementByID(id string) (nav.Element, bool) {
	v := e.document.Call("getElementById", id)
	if !v.Truthy() {
		return nil, false
	}
	return &elementNode{el: v}, true
}

// Ready runs fn once the DOM is parsed: immediately when the document is
// already past loading, otherwise on DOMContentLoaded.
func (e *Env) Ready(fn func()) {
	if e.document.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		cb.Release()
		return nil
	})
	e.document.Call("addEventListener", "DOMContentLoaded", cb)
}

// clickFromEvent builds a nav.Click from a DOM click event, walking from
// the click target up to the nearest enclosing anchor.
func clickFromEvent(evt js.Value) nav.Click {
	c := nav.Click{
		Ctrl:  evt.Get("ctrlKey").Bool(),
		Meta:  evt.Get("metaKey").Bool(),
		Shift: evt.Get("shiftKey").Bool(),
	}

	target := evt.Get("target")
	if target.Truthy() {
		if id := target.Get("id"); id.Truthy() && id.String() != "" {
			c.TargetID = id.String()
		}
	}

	for node := target; node.Truthy(); node = node.Get("parentElement") {
		tag := node.Get("tagName")
		if !tag.Truthy() || tag.String() != "A" {
			continue
		}
		// Use the raw attribute: the href property would already be
		// resolved to an absolute URL.
		if href := node.Call("getAttribute", "href"); href.Truthy() {
			c.Href = href.String()
		}
		break
	}
	return c
}

type mountNode struct {
	el js.Value
}

func (m *mountNode) SetHTML(markup string) {
	m.el.Set("innerHTML", markup)
}

type elementNode struct {
	el js.Value
}

func (n *elementNode) SetText(text string) {
	n.el.Set("textContent", text)
}

func (n *elementNode) Text() string {
	return n.el.Get("textContent").String()
}

func (n *elementNode) OnClick(fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	n.el.Call("addEventListener", "click", cb)
}

//go:build js && wasm

// The sfoglia-wasm binary is the browser entrypoint: it bootstraps the
// navigator against the real DOM once the document is parsed, then keeps
// the wasm module alive for the page's lifetime.
package main

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/dom"
)

func main() {
	env := dom.New()
	env.Ready(func() {
		sfoglia.Bootstrap(env, sfoglia.DefaultOptions())
	})

	// Event handlers run on the page's event loop; the main goroutine just
	// has to stay alive.
	select {}
}

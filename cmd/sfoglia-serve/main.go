// The sfoglia-serve binary is a static dev server for client-side routed
// pages: any path that does not match a file falls back to index.html, so
// deep links land in the navigator instead of a 404. With -watch it also
// exposes a /livereload SSE endpoint that signals whenever a file under the
// served directory changes.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// spaHandler serves files from dir, falling back to index.html for paths
// that do not exist on disk.
type spaHandler struct {
	dir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f, err := http.Dir(h.dir).Open(r.URL.Path); err == nil {
		f.Close()
		http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
		return
	}

	// Fallback to index.html for client-side routing
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

// broadcaster fans a change signal out to connected SSE clients.
type broadcaster struct {
	mu      sync.Mutex
	clients map[chan struct{}]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{clients: make(map[chan struct{}]struct{})}
}

func (b *broadcaster) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *broadcaster) unsubscribe(ch chan struct{}) {
	b.mu.Lock()
	delete(b.clients, ch)
	b.mu.Unlock()
}

func (b *broadcaster) notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	ch := b.subscribe()
	defer b.unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

// watch signals b on every write/create/remove under dir, adding newly
// created directories to the watcher as they appear.
func watch(dir string, b *broadcaster) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}
				slog.Debug("file changed", "file", event.Name, "op", event.Op.String())
				b.notify()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watch error", "error", err)
			}
		}
	}()
	return nil
}

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	dir := flag.String("dir", ".", "directory to serve")
	watchFiles := flag.Bool("watch", false, "watch the served directory and expose /livereload")
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/", spaHandler{dir: *dir})

	if *watchFiles {
		b := newBroadcaster()
		if err := watch(*dir, b); err != nil {
			slog.Error("cannot watch directory", "dir", *dir, "error", err)
			return
		}
		mux.Handle("/livereload", b)
	}

	fmt.Printf("Serving %s at http://localhost%s\n", *dir, *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		slog.Error("Error in server", "error", err)
		return
	}
}

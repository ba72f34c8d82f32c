package route

import "fmt"

// Handler produces the markup fragment for a route.
// Handlers take no input and should be deterministic.
type Handler func() string

// NotFoundFunc produces the markup shown for an unregistered path.
// It receives the path that failed to resolve.
type NotFoundFunc func(path string) string

// Table maps exact path strings to handlers.
// Registration overwrites; there is no removal operation.
type Table struct {
	routes   map[string]Handler
	notFound NotFoundFunc
}

// NewTable creates an empty table with a plain-text fallback handler.
func NewTable() *Table {
	return &Table{
		routes:   make(map[string]Handler),
		notFound: defaultNotFound,
	}
}

// Register stores handler under path, replacing any existing entry.
// The path is not validated or normalized.
func (t *Table) Register(path string, handler Handler) *Table {
	t.routes[path] = handler
	return t
}

// OnNotFound replaces the fallback handler used for unregistered paths.
// A nil fn restores the default.
func (t *Table) OnNotFound(fn NotFoundFunc) *Table {
	if fn == nil {
		fn = defaultNotFound
	}
	t.notFound = fn
	return t
}

// Resolve returns the handler registered for path, or a handler that
// renders the not-found fallback for that exact path. It never returns nil.
func (t *Table) Resolve(path string) Handler {
	if h, ok := t.routes[path]; ok {
		return h
	}
	return func() string {
		return t.notFound(path)
	}
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Paths returns the registered paths in no particular order.
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.routes))
	for p := range t.routes {
		paths = append(paths, p)
	}
	return paths
}

func defaultNotFound(path string) string {
	return fmt.Sprintf("<h1>Not Found</h1><p>No page is registered for %s</p>", path)
}

package route_test

import (
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

// Example demonstrates registration, resolution, and the not-found fallback.
func Example() {
	table := route.NewTable().
		Register("/", func() string { return "<h1>Home</h1>" }).
		Register("/about", func() string { return "<h1>About</h1>" }).
		OnNotFound(func(path string) string {
			return fmt.Sprintf("<h1>No page at %s</h1>", path)
		})

	fmt.Println(table.Resolve("/")())
	fmt.Println(table.Resolve("/about")())
	fmt.Println(table.Resolve("/settings")())

	// Output:
	// <h1>Home</h1>
	// <h1>About</h1>
	// <h1>No page at /settings</h1>
}

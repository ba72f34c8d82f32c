// Package route provides the path-to-handler table used by the navigator.
//
// Routes are plain string keys compared by exact equality: no patterns,
// no parameters, no trailing-slash normalization. Handlers take no input
// and return a markup fragment, which keeps them deterministic and
// trivially testable.
//
// # Basic Usage
//
//	t := route.NewTable().
//	    Register("/", homePage).
//	    Register("/about", aboutPage)
//
//	markup := t.Resolve("/about")()
//
// Resolve never fails. Unmatched paths resolve to a fallback handler whose
// output echoes the requested path; replace it with OnNotFound.
package route

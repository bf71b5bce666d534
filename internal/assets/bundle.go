package assets

import (
	"fmt"
	"slices"
	"strings"
)

// Bundle is a named collection of static asset files of one extension
// class, destined for a single minified output file.
type Bundle struct {
	// Contents are the source asset paths, in build order.
	Contents []string

	// Filters names the filter chain to apply when the bundle is built,
	// e.g. "cssmin" or "rjsmin". The environment records the name; it
	// does not run the filter itself.
	Filters string

	// Output is the path the built bundle is written to, relative to
	// the asset output root.
	Output string
}

// Equal reports whether two bundles describe the same contents, filter
// chain, and output. The environment uses it to make re-registration of
// an identical bundle a no-op.
func (b *Bundle) Equal(other *Bundle) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.Filters == other.Filters &&
		b.Output == other.Output &&
		slices.Equal(b.Contents, other.Contents)
}

func (b *Bundle) String() string {
	return fmt.Sprintf("Bundle(%s -> %s [%s])", strings.Join(b.Contents, ", "), b.Output, b.Filters)
}

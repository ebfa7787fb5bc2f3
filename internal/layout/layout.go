// Package layout computes window geometry for a tag's ordered window
// list. Strategies mutate the given windows in place, never allocate new
// entities and never fail; a strategy that runs out of windows mid-pass
// stops and leaves the rest untouched.
package layout

import "sort"

// Workspace is the rectangle windows are arranged within. The limited
// variants return geometry adjusted for reserving space for exactly cols
// columns; they are the caller's hook for margins and width caps.
type Workspace interface {
	X() int
	Y() int
	Width() int
	Height() int
	XLimited(cols int) int
	WidthLimited(cols int) int
}

// Tag holds the orientation flags of the tag being arranged. Flipping
// mirrors the grid along an axis by transforming column or row indices;
// it never changes any size computation.
type Tag struct {
	FlippedHorizontal bool
	FlippedVertical   bool
}

// Window receives exactly one geometry assignment per arrange call.
type Window interface {
	SetX(x int)
	SetY(y int)
	SetWidth(width int)
	SetHeight(height int)
}

// Func arranges windows inside the workspace. Windows are visited in
// list order; the caller owns the list and every window in it.
type Func func(ws Workspace, tag *Tag, windows []Window)

// Default is the strategy used when a tag names an unknown one.
const Default = "grid_dd"

var strategies = map[string]Func{
	"even_horizontal":     EvenHorizontal,
	"even_vertical":       EvenVertical,
	"grid_dd":             GridDD,
	"grid_horizontal":     GridHorizontal,
	"main_and_vert_stack": MainAndVertStack,
	"monocle":             Monocle,
}

// Get returns the strategy registered under name.
func Get(name string) (Func, bool) {
	fn, ok := strategies[name]
	return fn, ok
}

// Valid reports whether name is a registered strategy.
func Valid(name string) bool {
	_, ok := strategies[name]
	return ok
}

// Names returns all registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

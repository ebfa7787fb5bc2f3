package layout

import (
	"sort"
	"testing"
)

// testScreen implements Workspace with the centering width cap used by
// the window manager: a non-zero maxWindowWidth clamps the arranged
// region to cols*maxWindowWidth and centers it.
type testScreen struct {
	x, y, width, height int
	maxWindowWidth      int
}

func (s testScreen) X() int      { return s.x }
func (s testScreen) Y() int      { return s.y }
func (s testScreen) Width() int  { return s.width }
func (s testScreen) Height() int { return s.height }

func (s testScreen) WidthLimited(cols int) int {
	if s.maxWindowWidth == 0 || s.maxWindowWidth*cols >= s.width {
		return s.width
	}
	return s.maxWindowWidth * cols
}

func (s testScreen) XLimited(cols int) int {
	return s.x + (s.width-s.WidthLimited(cols))/2
}

type testWindow struct {
	x, y, width, height int
	assignments         int
}

func (w *testWindow) SetX(x int)          { w.x = x }
func (w *testWindow) SetY(y int)          { w.y = y }
func (w *testWindow) SetWidth(width int) { w.width = width }
func (w *testWindow) SetHeight(height int) {
	w.height = height
	w.assignments++
}

func (w *testWindow) geom() [4]int { return [4]int{w.x, w.y, w.width, w.height} }

func makeWindows(n int) ([]Window, []*testWindow) {
	windows := make([]Window, n)
	raw := make([]*testWindow, n)
	for i := range raw {
		raw[i] = &testWindow{}
		windows[i] = raw[i]
	}
	return windows, raw
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		fn, ok := Get(name)
		if !ok || fn == nil {
			t.Errorf("Get(%q) not registered", name)
		}
		if !Valid(name) {
			t.Errorf("Valid(%q) = false", name)
		}
	}

	if _, ok := Get("spiral"); ok {
		t.Error("Get(\"spiral\") should not be registered")
	}
	if Valid("") {
		t.Error("Valid(\"\") = true")
	}
}

func TestDefaultRegistered(t *testing.T) {
	if !Valid(Default) {
		t.Fatalf("default strategy %q not registered", Default)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(strategies) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(strategies))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

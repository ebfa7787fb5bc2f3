package layout

import "testing"

func TestGridHorizontal(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	// 5 windows over 3 columns: 1 + 2 + 2.
	windows, raw := makeWindows(5)
	GridHorizontal(ws, &Tag{}, windows)

	want := [][4]int{
		{0, 0, 266, 600},
		{266, 0, 266, 300},
		{266, 300, 266, 300},
		{532, 0, 266, 300},
		{532, 300, 266, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestGridHorizontalFlipped(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(5)
	GridHorizontal(ws, &Tag{FlippedHorizontal: true, FlippedVertical: true}, windows)

	want := [][4]int{
		{532, 0, 266, 600},
		{266, 300, 266, 300},
		{266, 0, 266, 300},
		{0, 300, 266, 300},
		{0, 0, 266, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestEvenHorizontal(t *testing.T) {
	ws := testScreen{width: 900, height: 600}

	tests := []struct {
		name string
		tag  Tag
		want [][4]int
	}{
		{
			name: "plain",
			want: [][4]int{
				{0, 0, 300, 600},
				{300, 0, 300, 600},
				{600, 0, 300, 600},
			},
		},
		{
			name: "flipped horizontal",
			tag:  Tag{FlippedHorizontal: true},
			want: [][4]int{
				{600, 0, 300, 600},
				{300, 0, 300, 600},
				{0, 0, 300, 600},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, raw := makeWindows(3)
			EvenHorizontal(ws, &tt.tag, windows)

			for i, win := range raw {
				if win.geom() != tt.want[i] {
					t.Errorf("window %d = %v, want %v", i, win.geom(), tt.want[i])
				}
			}
		})
	}
}

func TestEvenVertical(t *testing.T) {
	ws := testScreen{width: 800, height: 900}

	windows, raw := makeWindows(3)
	EvenVertical(ws, &Tag{FlippedVertical: true}, windows)

	want := [][4]int{
		{0, 600, 800, 300},
		{0, 300, 800, 300},
		{0, 0, 800, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestMonocle(t *testing.T) {
	ws := testScreen{x: 5, y: 7, width: 800, height: 600}

	windows, raw := makeWindows(3)
	Monocle(ws, &Tag{}, windows)

	for i, win := range raw {
		if win.geom() != [4]int{5, 7, 800, 600} {
			t.Errorf("window %d = %v, want full workspace", i, win.geom())
		}
	}
}

func TestMainAndVertStack(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(3)
	MainAndVertStack(ws, &Tag{}, windows)

	want := [][4]int{
		{0, 0, 400, 600},
		{400, 0, 400, 300},
		{400, 300, 400, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestMainAndVertStackFlippedHorizontal(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(3)
	MainAndVertStack(ws, &Tag{FlippedHorizontal: true}, windows)

	want := [][4]int{
		{400, 0, 400, 600},
		{0, 0, 400, 300},
		{0, 300, 400, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestMainAndVertStackSingle(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(1)
	MainAndVertStack(ws, &Tag{}, windows)

	if raw[0].geom() != [4]int{0, 0, 800, 600} {
		t.Errorf("single window = %v, want full workspace", raw[0].geom())
	}
}

func TestStrategiesEmptyList(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	for _, name := range Names() {
		fn, _ := Get(name)
		fn(ws, &Tag{}, nil) // must not panic
	}
}

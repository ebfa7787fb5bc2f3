package layout

import "testing"

func TestGridDDEmpty(t *testing.T) {
	ws := testScreen{width: 800, height: 600}
	GridDD(ws, &Tag{}, nil)
	GridDD(ws, &Tag{}, []Window{})
}

func TestGridDD(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	tests := []struct {
		name    string
		windows int
		want    [][4]int // x, y, width, height per window in list order
	}{
		{
			name:    "single window",
			windows: 1,
			want:    [][4]int{{0, 0, 800, 600}},
		},
		{
			// 1 chat + 2 videos = 4 slots, 2 columns.
			name:    "one chat one video column",
			windows: 3,
			want: [][4]int{
				{0, 0, 400, 600},
				{400, 0, 400, 300},
				{400, 300, 400, 300},
			},
		},
		{
			// 2 chats + 2 videos = 6 slots, 3 columns.
			name:    "two chat columns and a video column",
			windows: 4,
			want: [][4]int{
				{0, 0, 266, 600},
				{266, 0, 266, 600},
				{532, 0, 266, 300},
				{532, 300, 266, 300},
			},
		},
		{
			// 3 chats + 4 videos = 10 slots, 4 columns: two full-height
			// chat columns, one mixed column, one all-video column.
			name:    "mixed columns",
			windows: 7,
			want: [][4]int{
				{0, 0, 200, 600},
				{200, 0, 200, 600},
				{400, 0, 200, 400},
				{400, 400, 200, 200},
				{600, 0, 200, 200},
				{600, 200, 200, 200},
				{600, 400, 200, 200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, raw := makeWindows(tt.windows)
			GridDD(ws, &Tag{}, windows)

			for i, win := range raw {
				if win.geom() != tt.want[i] {
					t.Errorf("window %d = %v, want %v", i, win.geom(), tt.want[i])
				}
			}
		})
	}
}

func TestGridDDWorkspaceOffset(t *testing.T) {
	ws := testScreen{x: 10, y: 20, width: 800, height: 600}

	windows, raw := makeWindows(3)
	GridDD(ws, &Tag{}, windows)

	want := [][4]int{
		{10, 20, 400, 600},
		{410, 20, 400, 300},
		{410, 320, 400, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestGridDDLimitedWidth(t *testing.T) {
	// 150px window cap over 2 columns uses 300px centered in 800.
	ws := testScreen{width: 800, height: 600, maxWindowWidth: 150}

	windows, raw := makeWindows(3)
	GridDD(ws, &Tag{}, windows)

	want := [][4]int{
		{250, 0, 150, 600},
		{400, 0, 150, 300},
		{400, 300, 150, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestGridDDFlippedHorizontal(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(4)
	GridDD(ws, &Tag{FlippedHorizontal: true}, windows)

	// Column order reverses, sizes and row placement stay put.
	want := [][4]int{
		{532, 0, 266, 600},
		{266, 0, 266, 600},
		{0, 0, 266, 300},
		{0, 300, 266, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestGridDDFlippedVertical(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	windows, raw := makeWindows(4)
	GridDD(ws, &Tag{FlippedVertical: true}, windows)

	// Row indices reverse in slot units. The two videos swap places; a
	// lone chat cell in a two-slot column lands at slot 1, offset by its
	// own double height.
	want := [][4]int{
		{0, 600, 266, 600},
		{266, 600, 266, 600},
		{532, 300, 266, 300},
		{532, 0, 266, 300},
	}
	for i, win := range raw {
		if win.geom() != want[i] {
			t.Errorf("window %d = %v, want %v", i, win.geom(), want[i])
		}
	}
}

func TestGridDDDeterministic(t *testing.T) {
	ws := testScreen{width: 1920, height: 1080}

	for n := 1; n <= 16; n++ {
		first, firstRaw := makeWindows(n)
		second, secondRaw := makeWindows(n)
		GridDD(ws, &Tag{}, first)
		GridDD(ws, &Tag{}, second)

		for i := range firstRaw {
			if firstRaw[i].geom() != secondRaw[i].geom() {
				t.Errorf("n=%d window %d differs between runs: %v vs %v",
					n, i, firstRaw[i].geom(), secondRaw[i].geom())
			}
		}
	}
}

func TestGridDDAssignsEveryWindowOnce(t *testing.T) {
	ws := testScreen{width: 1366, height: 768}

	for n := 1; n <= 20; n++ {
		windows, raw := makeWindows(n)
		GridDD(ws, &Tag{}, windows)

		for i, win := range raw {
			if win.assignments != 1 {
				t.Errorf("n=%d window %d assigned %d times", n, i, win.assignments)
			}
		}
	}
}

func TestGridDDNoOverlap(t *testing.T) {
	ws := testScreen{width: 800, height: 600}

	for n := 1; n <= 16; n++ {
		windows, raw := makeWindows(n)
		GridDD(ws, &Tag{}, windows)

		for i := 0; i < len(raw); i++ {
			for j := i + 1; j < len(raw); j++ {
				if overlaps(raw[i], raw[j]) {
					t.Errorf("n=%d windows %d and %d overlap: %v %v",
						n, i, j, raw[i].geom(), raw[j].geom())
				}
			}
		}
	}
}

func overlaps(a, b *testWindow) bool {
	return a.x < b.x+b.width && b.x < a.x+a.width &&
		a.y < b.y+b.height && b.y < a.y+a.height
}

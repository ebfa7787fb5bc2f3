package layout

import "math"

// GridHorizontal splits the workspace into near-square grid columns and
// each column into equal rows. Later columns absorb the row remainder.
//
//	+---+---+---+
//	|   |   |   |
//	|   +---+---+
//	+---+   |   |
//	|   +---+---+
//	|   |   |   |
//	+---+---+---+
func GridHorizontal(ws Workspace, tag *Tag, windows []Window) {
	windowCount := len(windows)
	numCols := int(math.Ceil(math.Sqrt(float64(windowCount))))

	next := 0
	remaining := windowCount
	for col := 0; col < numCols; col++ {
		remainingCols := numCols - col
		rowsInCol := remaining / remainingCols
		if rowsInCol == 0 {
			continue
		}

		winWidth := ws.WidthLimited(numCols) / numCols
		winHeight := ws.Height() / rowsInCol

		posX := col
		if tag.FlippedHorizontal {
			posX = numCols - col - 1
		}

		for row := 0; row < rowsInCol; row++ {
			if next >= windowCount {
				return
			}
			win := windows[next]
			next++

			posY := row
			if tag.FlippedVertical {
				posY = rowsInCol - row - 1
			}

			win.SetHeight(winHeight)
			win.SetWidth(winWidth)
			win.SetX(ws.XLimited(numCols) + winWidth*posX)
			win.SetY(ws.Y() + winHeight*posY)

			remaining--
		}
	}
}

// EvenHorizontal gives every window a full-height column.
func EvenHorizontal(ws Workspace, tag *Tag, windows []Window) {
	windowCount := len(windows)
	if windowCount == 0 {
		return
	}

	winWidth := ws.WidthLimited(windowCount) / windowCount
	for i, win := range windows {
		posX := i
		if tag.FlippedHorizontal {
			posX = windowCount - i - 1
		}

		win.SetHeight(ws.Height())
		win.SetWidth(winWidth)
		win.SetX(ws.XLimited(windowCount) + winWidth*posX)
		win.SetY(ws.Y())
	}
}

// EvenVertical gives every window a full-width row.
func EvenVertical(ws Workspace, tag *Tag, windows []Window) {
	windowCount := len(windows)
	if windowCount == 0 {
		return
	}

	winHeight := ws.Height() / windowCount
	for i, win := range windows {
		posY := i
		if tag.FlippedVertical {
			posY = windowCount - i - 1
		}

		win.SetHeight(winHeight)
		win.SetWidth(ws.WidthLimited(1))
		win.SetX(ws.XLimited(1))
		win.SetY(ws.Y() + winHeight*posY)
	}
}

// Monocle stacks every window on the full workspace.
func Monocle(ws Workspace, tag *Tag, windows []Window) {
	for _, win := range windows {
		win.SetHeight(ws.Height())
		win.SetWidth(ws.WidthLimited(1))
		win.SetX(ws.XLimited(1))
		win.SetY(ws.Y())
	}
}

// MainAndVertStack gives the first window half the workspace and stacks
// the rest in the other half. FlippedHorizontal swaps the two halves,
// FlippedVertical reverses the stack order.
func MainAndVertStack(ws Workspace, tag *Tag, windows []Window) {
	windowCount := len(windows)
	if windowCount == 0 {
		return
	}
	if windowCount == 1 {
		Monocle(ws, tag, windows)
		return
	}

	halfWidth := ws.WidthLimited(2) / 2
	mainX := ws.XLimited(2)
	stackX := mainX + halfWidth
	if tag.FlippedHorizontal {
		mainX, stackX = stackX, mainX
	}

	main := windows[0]
	main.SetHeight(ws.Height())
	main.SetWidth(halfWidth)
	main.SetX(mainX)
	main.SetY(ws.Y())

	stackCount := windowCount - 1
	winHeight := ws.Height() / stackCount
	for i, win := range windows[1:] {
		posY := i
		if tag.FlippedVertical {
			posY = stackCount - i - 1
		}

		win.SetHeight(winHeight)
		win.SetWidth(halfWidth)
		win.SetX(stackX)
		win.SetY(ws.Y() + winHeight*posY)
	}
}

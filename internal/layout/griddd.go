package layout

import "math"

// GridDD splits the workspace into near-square grid columns where the
// windows alternate between two roles: chat windows span two row slots
// rendered as one double-height cell, video windows span a single slot.
// Odd window counts get the extra window as video.
//
// 1 chat + 1 video (1*2 + 1 = 3 slots):
//
//	+---+---+
//	|   |   |
//	|   +---+
//	|   |   |
//	+---+---+
//
// 3 chats + 4 videos (3*2 + 4 = 10 slots):
//
//	+---+---+---+---+
//	|   |   |   +---+
//	|   |   |   |   |
//	|   |   +---+---+
//	|   |   |   |   |
//	+---+---+---+---+
//
// Remainder pixels from the integer divisions are dropped into the last
// row and column instead of being redistributed; changing that would
// change visual output.
func GridDD(ws Workspace, tag *Tag, windows []Window) {
	windowCount := len(windows)
	chatCount := windowCount / 2
	videoCount := windowCount / 2
	if windowCount%2 == 1 {
		videoCount++
	}
	virtualCount := chatCount*2 + videoCount

	// Smallest column count that keeps the grid close to square when
	// measured in virtual row slots.
	numCols := int(math.Ceil(math.Sqrt(float64(virtualCount))))

	next := 0
	remainingVirtual := virtualCount
	remainingChat := chatCount
	for col := 0; col < numCols; col++ {
		remainingCols := numCols - col
		rowsInCol := remainingVirtual / remainingCols
		if rowsInCol == 0 {
			// Trailing column with no slots left; skip it instead of
			// dividing by zero below.
			continue
		}
		chatRows := min(remainingChat, rowsInCol/2)
		videoRows := rowsInCol - chatRows*2

		virtualHeight := ws.Height() / rowsInCol
		chatHeight := virtualHeight * 2
		videoHeight := virtualHeight
		winWidth := ws.WidthLimited(numCols) / numCols

		posX := col
		if tag.FlippedHorizontal {
			posX = numCols - col - 1
		}

		for row := 0; row < chatRows; row++ {
			if next >= windowCount {
				return
			}
			win := windows[next]
			next++

			posY := row
			if tag.FlippedVertical {
				posY = rowsInCol - row - 1
			}

			win.SetHeight(chatHeight)
			win.SetWidth(winWidth)
			win.SetX(ws.XLimited(numCols) + winWidth*posX)
			win.SetY(ws.Y() + chatHeight*posY)

			remainingVirtual -= 2
			remainingChat--
		}

		for row := 0; row < videoRows; row++ {
			if next >= windowCount {
				return
			}
			win := windows[next]
			next++

			// Video rows start below the chat cells already placed in
			// this column, counted in single slots.
			posY := row + chatRows*2
			if tag.FlippedVertical {
				posY = rowsInCol - chatRows - row - 1
			}

			win.SetHeight(videoHeight)
			win.SetWidth(winWidth)
			win.SetX(ws.XLimited(numCols) + winWidth*posX)
			win.SetY(ws.Y() + videoHeight*posY)

			remainingVirtual--
		}
	}
}

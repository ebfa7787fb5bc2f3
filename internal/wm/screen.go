package wm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Screen is the workspace rectangle clients are arranged within. It
// implements layout.Workspace. A non-zero MaxWindowWidth caps per-column
// width and centers the arranged region inside the screen.
type Screen struct {
	Rect           Rect
	MaxWindowWidth int
}

func (s Screen) X() int      { return s.Rect.X }
func (s Screen) Y() int      { return s.Rect.Y }
func (s Screen) Width() int  { return s.Rect.Width }
func (s Screen) Height() int { return s.Rect.Height }

func (s Screen) WidthLimited(cols int) int {
	if s.MaxWindowWidth == 0 || s.MaxWindowWidth*cols >= s.Rect.Width {
		return s.Rect.Width
	}
	return s.MaxWindowWidth * cols
}

func (s Screen) XLimited(cols int) int {
	return s.Rect.X + (s.Rect.Width-s.WidthLimited(cols))/2
}

// Client is an X window adopted onto a tag. It implements layout.Window;
// geometry writes are buffered until Apply pushes them to the X server.
type Client struct {
	WID   xproto.Window
	Rect  Rect
	dirty bool
}

func (c *Client) SetX(x int) {
	if c.Rect.X != x {
		c.Rect.X = x
		c.dirty = true
	}
}

func (c *Client) SetY(y int) {
	if c.Rect.Y != y {
		c.Rect.Y = y
		c.dirty = true
	}
}

func (c *Client) SetWidth(width int) {
	if c.Rect.Width != width {
		c.Rect.Width = width
		c.dirty = true
	}
}

func (c *Client) SetHeight(height int) {
	if c.Rect.Height != height {
		c.Rect.Height = height
		c.dirty = true
	}
}

func (c *Client) Apply(conn *xgb.Conn) error {
	if !c.dirty {
		return nil
	}

	if err := xproto.ConfigureWindowChecked(conn, c.WID,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(c.Rect.X), uint32(c.Rect.Y), uint32(c.Rect.Width), uint32(c.Rect.Height)}).Check(); err != nil {
		return err
	}

	c.dirty = false
	return nil
}

package wm

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/ItsNotGoodName/x-tagwm/internal/bus"
	"github.com/ItsNotGoodName/x-tagwm/internal/config"
	"github.com/ItsNotGoodName/x-tagwm/internal/layout"
	"github.com/ItsNotGoodName/x-tagwm/internal/xcursor"
	"github.com/google/uuid"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Tag is a named group of clients sharing one layout strategy and
// orientation flags. Clients keeps the caller-defined order that the
// layout strategies iterate in.
type Tag struct {
	UUID   string
	Name   string
	Layout string
	layout.Tag
	Clients []*Client
}

// NormalizeConfig fills in missing tag ids, names and layout names.
func NormalizeConfig(store config.Store) error {
	return store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
		if len(cfg.Tags) == 0 {
			cfg.Tags = []config.Tag{{Name: "1", Layout: layout.Default}}
		}

		for i := range cfg.Tags {
			if cfg.Tags[i].UUID == "" {
				cfg.Tags[i].UUID = uuid.NewString()
			}
			if cfg.Tags[i].Name == "" {
				cfg.Tags[i].Name = strconv.Itoa(i + 1)
			}
			if !layout.Valid(cfg.Tags[i].Layout) {
				cfg.Tags[i].Layout = layout.Default
			}
		}

		return cfg, nil
	})
}

type Manager struct {
	conn  *xgb.Conn
	root  xproto.Window
	store config.Store

	commandC chan Command

	keys map[keyChord]func(m *Manager)

	mu      sync.Mutex
	screen  Screen
	tags    []*Tag
	focused int
}

// NewManager selects substructure redirect on the root window, which
// fails when another window manager owns the display.
func NewManager(conn *xgb.Conn, store config.Store) (*Manager, error) {
	cfg, err := store.GetConfig()
	if err != nil {
		return nil, err
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)

	cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr)
	if err != nil {
		return nil, err
	}

	if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwEventMask|xproto.CwCursor, // 1, 2
		[]uint32{
			xproto.EventMaskStructureNotify |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskSubstructureRedirect, // 1
			uint32(cursor), // 2
		}).Check(); err != nil {
		return nil, fmt.Errorf("failed to manage root window (is another window manager running?): %w", err)
	}

	tags := make([]*Tag, 0, len(cfg.Tags))
	for _, t := range cfg.Tags {
		tags = append(tags, &Tag{
			UUID:   t.UUID,
			Name:   t.Name,
			Layout: t.Layout,
			Tag: layout.Tag{
				FlippedHorizontal: t.FlippedHorizontal,
				FlippedVertical:   t.FlippedVertical,
			},
		})
	}

	m := &Manager{
		conn:     conn,
		root:     screen.Root,
		store:    store,
		commandC: make(chan Command),
		screen: Screen{
			Rect: Rect{
				Width:  int(screen.WidthInPixels),
				Height: int(screen.HeightInPixels),
			},
			MaxWindowWidth: cfg.MaxWindowWidth,
		},
		tags: tags,
	}

	if err := m.grabKeys(); err != nil {
		return nil, err
	}

	return m, nil
}

// Send delivers a command to the manager's event loop.
func (m *Manager) Send(ctx context.Context, cmd Command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case m.commandC <- cmd:
		return nil
	}
}

func (m *Manager) findTag(tagUUID string) *Tag {
	for _, t := range m.tags {
		if t.UUID == tagUUID {
			return t
		}
	}
	return nil
}

func (m *Manager) findClient(wid xproto.Window) (*Tag, *Client) {
	for _, t := range m.tags {
		for _, c := range t.Clients {
			if c.WID == wid {
				return t, c
			}
		}
	}
	return nil, nil
}

func (m *Manager) manage(wid xproto.Window) {
	m.mu.Lock()
	if _, c := m.findClient(wid); c != nil {
		m.mu.Unlock()
		return
	}
	tag := m.tags[m.focused]
	tag.Clients = append(tag.Clients, &Client{WID: wid})
	m.mu.Unlock()

	if err := xproto.MapWindowChecked(m.conn, wid).Check(); err != nil {
		slog.Error("Failed to map window", "wid", wid, "error", err)
	}

	slog.Info("Managing window", "wid", wid, "tag", tag.Name)
	m.retile()
}

func (m *Manager) unmanage(wid xproto.Window) {
	m.mu.Lock()
	tag, client := m.findClient(wid)
	if client == nil {
		m.mu.Unlock()
		return
	}
	for i, c := range tag.Clients {
		if c == client {
			tag.Clients = append(tag.Clients[:i], tag.Clients[i+1:]...)
			break
		}
	}
	focused := tag == m.tags[m.focused]
	m.mu.Unlock()

	slog.Info("Unmanaging window", "wid", wid, "tag", tag.Name)
	if focused {
		m.retile()
	}
}

// retile arranges the focused tag's clients with its layout strategy and
// pushes changed geometry to the X server.
func (m *Manager) retile() {
	m.mu.Lock()
	tag := m.tags[m.focused]

	fn, ok := layout.Get(tag.Layout)
	if !ok {
		fn, _ = layout.Get(layout.Default)
	}

	windows := make([]layout.Window, len(tag.Clients))
	for i, c := range tag.Clients {
		windows[i] = c
	}
	fn(m.screen, &tag.Tag, windows)

	for _, c := range tag.Clients {
		if err := c.Apply(m.conn); err != nil {
			slog.Error("Failed to configure window", "wid", c.WID, "error", err)
		}
	}
	event := EventRetiled{TagUUID: tag.UUID, Layout: tag.Layout, Windows: len(tag.Clients)}
	m.mu.Unlock()

	bus.Publish(event)
}

func (m *Manager) focusTag(tagUUID string) {
	m.mu.Lock()
	next := -1
	for i, t := range m.tags {
		if t.UUID == tagUUID {
			next = i
			break
		}
	}
	if next == -1 || next == m.focused {
		m.mu.Unlock()
		return
	}

	for _, c := range m.tags[m.focused].Clients {
		xproto.UnmapWindow(m.conn, c.WID)
	}
	for _, c := range m.tags[next].Clients {
		xproto.MapWindow(m.conn, c.WID)
	}
	m.focused = next
	name := m.tags[next].Name
	m.mu.Unlock()

	slog.Info("Focused tag", "tag", name)
	bus.Publish(EventTagFocused{TagUUID: tagUUID})
	m.retile()
}

func (m *Manager) setLayout(tagUUID, name string) {
	if !layout.Valid(name) {
		slog.Error("Unknown layout", "layout", name)
		return
	}

	m.mu.Lock()
	tag := m.findTag(tagUUID)
	if tag == nil {
		m.mu.Unlock()
		return
	}
	tag.Layout = name
	focused := tag == m.tags[m.focused]
	m.mu.Unlock()

	m.saveTag(tagUUID, func(t *config.Tag) { t.Layout = name })
	if focused {
		m.retile()
	}
}

func (m *Manager) toggleFlip(tagUUID string, horizontal, vertical bool) {
	m.mu.Lock()
	tag := m.findTag(tagUUID)
	if tag == nil {
		m.mu.Unlock()
		return
	}
	if horizontal {
		tag.FlippedHorizontal = !tag.FlippedHorizontal
	}
	if vertical {
		tag.FlippedVertical = !tag.FlippedVertical
	}
	flippedH, flippedV := tag.FlippedHorizontal, tag.FlippedVertical
	focused := tag == m.tags[m.focused]
	m.mu.Unlock()

	m.saveTag(tagUUID, func(t *config.Tag) {
		t.FlippedHorizontal = flippedH
		t.FlippedVertical = flippedV
	})
	if focused {
		m.retile()
	}
}

func (m *Manager) saveTag(tagUUID string, fn func(t *config.Tag)) {
	err := m.store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
		for i := range cfg.Tags {
			if cfg.Tags[i].UUID == tagUUID {
				fn(&cfg.Tags[i])
				break
			}
		}
		return cfg, nil
	})
	if err != nil {
		slog.Error("Failed to save tag", "tag", tagUUID, "error", err)
	}
}

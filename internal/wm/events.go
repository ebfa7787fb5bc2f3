package wm

import (
	"context"
	"log/slog"

	"github.com/ItsNotGoodName/x-tagwm/internal/bus"
	"github.com/jezek/xgb/xproto"
)

type (
	// Command mutates manager state from outside the event loop via Send.
	Command any

	CommandFocusTag struct {
		TagUUID string
	}
	CommandSetLayout struct {
		TagUUID string
		Layout  string
	}
	CommandToggleFlip struct {
		TagUUID    string
		Horizontal bool
		Vertical   bool
	}
)

type (
	EventRetiled struct {
		TagUUID string `json:"tag_uuid"`
		Layout  string `json:"layout"`
		Windows int    `json:"windows"`
	}
	EventTagFocused struct {
		TagUUID string `json:"tag_uuid"`
	}
)

var (
	Retiled    = bus.NewHub[EventRetiled]().Register()
	TagFocused = bus.NewHub[EventTagFocused]().Register()
)

func (m *Manager) String() string {
	return "wm.Manager"
}

// Serve is the manager's single event loop; all client and tag mutation
// happens here.
func (m *Manager) Serve(ctx context.Context) error {
	eventC := make(chan any)
	go m.receiveEvents(ctx, eventC)

	m.retile()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-m.commandC:
			m.handleCommand(cmd)
		case ev, ok := <-eventC:
			if !ok {
				return nil
			}
			m.handleEvent(ev)
		}
	}
}

func (m *Manager) handleCommand(cmd Command) {
	switch cmd := cmd.(type) {
	case CommandFocusTag:
		m.focusTag(cmd.TagUUID)
	case CommandSetLayout:
		m.setLayout(cmd.TagUUID, cmd.Layout)
	case CommandToggleFlip:
		m.toggleFlip(cmd.TagUUID, cmd.Horizontal, cmd.Vertical)
	default:
		slog.Error("Unknown command", "command", cmd)
	}
}

func (m *Manager) handleEvent(ev any) {
	switch ev := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		slog.Debug("ConfigureNotifyEvent", "event", ev.String())

		if ev.Window == m.root {
			m.mu.Lock()
			m.screen.Rect.Width = int(ev.Width)
			m.screen.Rect.Height = int(ev.Height)
			m.mu.Unlock()
			m.retile()
		}
	case xproto.MapRequestEvent:
		slog.Debug("MapRequestEvent", "event", ev.String())

		m.manage(ev.Window)
	case xproto.ConfigureRequestEvent:
		slog.Debug("ConfigureRequestEvent", "event", ev.String())

		// Managed windows are re-tiled and the layout wins; unmanaged
		// windows get what they asked for.
		m.mu.Lock()
		_, client := m.findClient(ev.Window)
		m.mu.Unlock()
		if client != nil {
			m.retile()
			return
		}
		xproto.ConfigureWindow(m.conn, ev.Window,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(ev.X), uint32(ev.Y), uint32(ev.Width), uint32(ev.Height)})
	case xproto.KeyPressEvent:
		slog.Debug("KeyPressEvent", "event", ev.String())

		m.handleKeyPress(ev)
	case xproto.DestroyNotifyEvent:
		slog.Debug("DestroyNotifyEvent", "event", ev.String())

		m.unmanage(ev.Window)
	case xproto.UnmapNotifyEvent:
		// Tag switches unmap managed windows, so unmapping alone does
		// not mean the client is gone; removal happens on destroy.
		slog.Debug("UnmapNotifyEvent", "event", ev.String())
	default:
		slog.Debug("unknown event", "event", ev)
	}
}

func (m *Manager) receiveEvents(ctx context.Context, eventC chan<- any) {
	defer close(eventC)
	slog := slog.With("func", "wm.Manager.receiveEvents")

	for {
		ev, err := m.conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("exit: no event or error")
			return
		}

		if err != nil {
			// X protocol errors (e.g. a BadWindow from a client that
			// vanished mid-request) must not kill the manager.
			slog.Error("failed to read event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}

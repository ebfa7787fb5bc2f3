package wm

import (
	"log/slog"

	"github.com/ItsNotGoodName/x-tagwm/internal/layout"
	"github.com/jezek/xgb/xproto"
)

// Keysyms for the grabbed bindings.
const (
	keysymSpace uint32 = 0x0020
	keysymH     uint32 = 0x0068
	keysymV     uint32 = 0x0076
	keysymTab   uint32 = 0xff09
)

const bindingMods = xproto.ModMaskShift | xproto.ModMaskControl | xproto.ModMask1 | xproto.ModMask4

type binding struct {
	mod    uint16
	keysym uint32
	fn     func(m *Manager)
}

// All bindings use Mod4 (the super key).
var bindings = []binding{
	{xproto.ModMask4, keysymTab, func(m *Manager) { m.cycleTag() }},
	{xproto.ModMask4, keysymSpace, func(m *Manager) { m.cycleLayout() }},
	{xproto.ModMask4, keysymH, func(m *Manager) { m.flipFocused(true, false) }},
	{xproto.ModMask4, keysymV, func(m *Manager) { m.flipFocused(false, true) }},
}

type keyChord struct {
	mod  uint16
	code xproto.Keycode
}

// grabKeys resolves each binding's keysym to a keycode and grabs it on
// the root window.
func (m *Manager) grabKeys() error {
	setup := xproto.Setup(m.conn)
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(m.conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return err
	}

	per := int(reply.KeysymsPerKeycode)
	m.keys = make(map[keyChord]func(m *Manager), len(bindings))
	for _, b := range bindings {
		var code xproto.Keycode
		for i := 0; i < int(count); i++ {
			if uint32(reply.Keysyms[i*per]) == b.keysym {
				code = setup.MinKeycode + xproto.Keycode(i)
				break
			}
		}
		if code == 0 {
			slog.Warn("No keycode for binding", "keysym", b.keysym)
			continue
		}

		if err := xproto.GrabKeyChecked(m.conn, true, m.root, b.mod, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
			return err
		}
		m.keys[keyChord{mod: b.mod, code: code}] = b.fn
	}

	return nil
}

func (m *Manager) handleKeyPress(ev xproto.KeyPressEvent) {
	// Ignore lock bits (caps/num) in the reported state.
	fn, ok := m.keys[keyChord{mod: ev.State & bindingMods, code: ev.Detail}]
	if !ok {
		return
	}
	fn(m)
}

func (m *Manager) cycleTag() {
	m.mu.Lock()
	next := m.tags[(m.focused+1)%len(m.tags)].UUID
	m.mu.Unlock()

	m.focusTag(next)
}

func (m *Manager) cycleLayout() {
	m.mu.Lock()
	tag := m.tags[m.focused]
	names := layout.Names()
	next := names[0]
	for i, name := range names {
		if name == tag.Layout {
			next = names[(i+1)%len(names)]
			break
		}
	}
	tagUUID := tag.UUID
	m.mu.Unlock()

	m.setLayout(tagUUID, next)
}

func (m *Manager) flipFocused(horizontal, vertical bool) {
	m.mu.Lock()
	tagUUID := m.tags[m.focused].UUID
	m.mu.Unlock()

	m.toggleFlip(tagUUID, horizontal, vertical)
}

package wm

type State struct {
	Screen ScreenState `json:"screen"`
	Tags   []TagState  `json:"tags"`
}

type ScreenState struct {
	Rect           Rect `json:"rect"`
	MaxWindowWidth int  `json:"max_window_width"`
}

type TagState struct {
	UUID              string        `json:"uuid"`
	Name              string        `json:"name"`
	Layout            string        `json:"layout"`
	FlippedHorizontal bool          `json:"flipped_horizontal"`
	FlippedVertical   bool          `json:"flipped_vertical"`
	Focused           bool          `json:"focused"`
	Clients           []ClientState `json:"clients"`
}

type ClientState struct {
	WID  uint32 `json:"wid"`
	Rect Rect   `json:"rect"`
}

// State returns a copy of the manager's current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	tags := make([]TagState, 0, len(m.tags))
	for i, t := range m.tags {
		clients := make([]ClientState, 0, len(t.Clients))
		for _, c := range t.Clients {
			clients = append(clients, ClientState{
				WID:  uint32(c.WID),
				Rect: c.Rect,
			})
		}

		tags = append(tags, TagState{
			UUID:              t.UUID,
			Name:              t.Name,
			Layout:            t.Layout,
			FlippedHorizontal: t.FlippedHorizontal,
			FlippedVertical:   t.FlippedVertical,
			Focused:           i == m.focused,
			Clients:           clients,
		})
	}

	return State{
		Screen: ScreenState{
			Rect:           m.screen.Rect,
			MaxWindowWidth: m.screen.MaxWindowWidth,
		},
		Tags: tags,
	}
}

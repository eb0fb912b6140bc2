package feed

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app/interaction"
)

// toggle flips an interaction on the selected prediction optimistically and
// fires the request.
func (m *Model) toggle(kind interaction.Kind) tea.Cmd {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	key, ok := m.keyFor(e, kind)
	if !ok {
		if kind == interaction.Follow && (e.IsOwn || m.session.IsSelf(e.Author.ID)) {
			m.notice = "That's your own prediction."
		}
		return nil
	}
	if _, known := m.tracker.Get(key); !known {
		active, count := baseline(e, kind)
		m.tracker.Seed(key, active, count)
	}

	st, err := m.tracker.Begin(key)
	if err != nil {
		m.notice = fmt.Sprintf("Still waiting for the last %s.", kind)
		return nil
	}
	m.notice = ""
	return m.sendToggle(key, st.Active())
}

func (m Model) handleInteractionMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleResultMsg:
		_, effect := m.tracker.Finish(msg.Key, msg.Err)
		switch effect {
		case interaction.EffectNotify:
			m.notice = fmt.Sprintf("Could not %s: %v", msg.Key.Kind.Verb(msg.On), msg.Err)
		case interaction.EffectRefetch:
			return m, m.fetchFollowStatus(msg.Key.ID)
		}
		return m, nil

	case FollowStatusMsg:
		key := interaction.Key{ID: msg.UserID, Kind: interaction.Follow}
		following := msg.Following
		if msg.Err != nil {
			// The conflict already said the server holds the requested state.
			st, _ := m.tracker.Get(key)
			following = st.Active()
		}
		m.tracker.Settle(key, following)
		return m, nil
	}
	return m, nil
}

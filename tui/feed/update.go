package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureSelectedVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ExpiredMsg:
		m.expired = len(msg.Entities)
		return m, nil
	}

	switch msg.(type) {
	case PageLoadedMsg, PageErrorMsg:
		return m.handleFeedLoadingMsg(msg)
	case ToggleResultMsg, FollowStatusMsg:
		return m.handleInteractionMsg(msg)
	case CommentsLoadedMsg, CommentsErrorMsg, SubmitCommentMsg, CommentPostedMsg:
		return m.handleDetailThreadMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg.(tea.KeyMsg))
	}

	return m, nil
}

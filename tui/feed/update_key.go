package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app/interaction"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleHints) {
		m.showAllHints = !m.showAllHints
		return m, nil
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.ensureSelectedVisible()
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		m.ensureSelectedVisible()
		return m, m.maybePrefetch()
	case key.Matches(msg, m.keys.Refresh):
		m.notice = ""
		return m, m.beginRefresh()
	case key.Matches(msg, m.keys.LoadMore):
		return m, m.loadMore()
	case key.Matches(msg, m.keys.NextCategory):
		return m, m.switchCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.switchCategory(-1)
	case key.Matches(msg, m.keys.Open):
		return m, m.openDetail()
	case key.Matches(msg, m.keys.Like):
		return m, m.toggle(interaction.Like)
	case key.Matches(msg, m.keys.Repost):
		return m, m.toggle(interaction.Repost)
	case key.Matches(msg, m.keys.Bookmark):
		return m, m.toggle(interaction.Bookmark)
	case key.Matches(msg, m.keys.Follow):
		return m, m.toggle(interaction.Follow)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
		m.ensureRowVisible()
	case key.Matches(msg, m.keys.Down):
		n := len(m.detailComments())
		if m.row < n {
			m.row++
		}
		m.ensureRowVisible()
		if m.row >= n-prefetchTrigger && m.comments.HasMore() && !m.comments.InFlight() && n > 0 {
			return m, m.loadMoreComments()
		}
	case key.Matches(msg, m.keys.LoadMore):
		return m, m.loadMoreComments()
	case key.Matches(msg, m.keys.Open):
		c, ok := m.selectedComment()
		if !ok {
			return m, nil
		}
		if c.Local {
			m.notice = "Wait for the comment to post."
			return m, nil
		}
		target := m.composeTarget(true, false)
		return m, func() tea.Msg { return target }
	case key.Matches(msg, m.keys.Comment):
		target := m.composeTarget(false, false)
		return m, func() tea.Msg { return target }
	case key.Matches(msg, m.keys.CommentEditor):
		if c, ok := m.selectedComment(); ok && c.Local {
			m.notice = "Wait for the comment to post."
			return m, nil
		}
		target := m.composeTarget(m.row > 0, true)
		return m, func() tea.Msg { return target }
	case key.Matches(msg, m.keys.Like):
		return m, m.toggle(interaction.Like)
	case key.Matches(msg, m.keys.Repost):
		return m, m.toggle(interaction.Repost)
	case key.Matches(msg, m.keys.Bookmark):
		return m, m.toggle(interaction.Bookmark)
	case key.Matches(msg, m.keys.Follow):
		return m, m.toggle(interaction.Follow)
	}
	return m, nil
}

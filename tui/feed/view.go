package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/CrestNiraj12/terminalwager/tui/common"
)

// View renders the feed as a string.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	switch {
	case m.loading && len(m.items) == 0:
		fmt.Fprintf(&b, "  %s Loading predictions...\n", m.spinner.View())
	case m.err != nil && len(m.items) == 0:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.items) == 0:
		b.WriteString("  No predictions in this category yet.\n")
	default:
		b.WriteString(m.renderList(time.Now()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("TerminalWager")
	tagline := common.TaglineStyle.Render("<Call it before it happens>")
	header := title + tagline
	if m.expired > 0 {
		header += " " + common.ExpiredBadgeStyle.Render(fmt.Sprintf("%d awaiting resolution", m.expired))
	}
	return header + "\n" + m.renderCategoryTabs() + "\n\n"
}

func (m Model) renderList(now time.Time) string {
	start := min(max(m.startIndex, 0), len(m.items)-1)
	end := min(start+m.visibleCards(), len(m.items))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(m.items[i], i == m.selected, now))
		b.WriteString("\n")
	}
	if m.loading {
		fmt.Fprintf(&b, "  %s Loading more...\n", m.spinner.View())
	} else if !m.cursor.HasMore() && !m.stale {
		b.WriteString(common.TimestampStyle.Render("  · end of feed ·") + "\n")
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	var lines []string
	if m.notice != "" {
		lines = append(lines, common.NoticeStyle.Render(m.notice))
	}
	hints := "j/k: move · enter: open · l: like · R: repost · b: save · f: follow · tab: category · ?: more · q: quit"
	if m.showAllHints {
		hints = "j/k: move · enter: open · r: refresh · m: load more · l: like · R: repost · b: bookmark · f: follow · tab/shift+tab: category · ?: fewer · q: quit"
	}
	if m.width > 0 {
		hints = truncateText(hints, m.width-2)
	}
	lines = append(lines, common.StatusBarStyle.Render(hints))
	return strings.Join(lines, "\n")
}

package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/tui/common"
)

const detailReservedLines = 16

func (m Model) renderDetailView() string {
	now := time.Now()
	width := m.contentWidth()
	e := m.entity

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Padding(1, 0, 0, 1).Render("Prediction") + "\n\n")

	body := []string{m.renderCardHeader(e, now)}
	for _, ln := range wrapText(e.Question, width) {
		body = append(body, common.ContentStyle.Bold(true).Render(ln))
	}
	if e.Description != "" && e.Description != e.Question {
		for _, ln := range wrapText(e.Description, width) {
			body = append(body, common.ContentStyle.Render(ln))
		}
	}
	if e.Media.HasAttachment() {
		body = append(body, common.TimestampStyle.Render(fmt.Sprintf("[%s] %s", e.Media.Type, e.Media.URL)))
	}
	body = append(body,
		renderPool("XP", e.PoolXP),
		renderPool("XC", e.PoolXC),
		m.renderActions(e),
	)
	style := common.UnselectedStyle
	if m.row == 0 {
		style = common.SelectedStyle
	}
	b.WriteString(style.Width(width + 2).Render(clampLinesToWidth(strings.Join(body, "\n"), width)))
	b.WriteString("\n\n")

	b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("  Comments (%d)", m.commentCount(e))) + "\n")
	b.WriteString(m.renderComments(width))

	b.WriteString("\n")
	var status []string
	if m.notice != "" {
		status = append(status, common.NoticeStyle.Render(m.notice))
	}
	hints := "j/k: move · c: comment · C: editor · enter: reply · l/R/b/f: act · esc: back"
	if m.width > 0 {
		hints = truncateText(hints, m.width-2)
	}
	status = append(status, common.StatusBarStyle.Render(hints))
	b.WriteString(strings.Join(status, "\n"))
	return b.String()
}

func (m Model) renderComments(width int) string {
	comments := m.detailComments()
	var b strings.Builder
	switch {
	case m.comments.InFlight() && len(comments) == 0:
		fmt.Fprintf(&b, "  %s Loading comments...\n", m.spinner.View())
		return b.String()
	case m.commentErr != nil && len(comments) == 0:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Could not load comments: %v", m.commentErr)) + "\n")
		return b.String()
	case len(comments) == 0:
		b.WriteString("  No comments yet. Press c to start the thread.\n")
		return b.String()
	}

	start := max(m.detailStart, 0)
	for i := start; i < len(comments); i++ {
		b.WriteString(m.renderComment(comments[i], i+1 == m.row, width))
	}
	if m.comments.InFlight() {
		fmt.Fprintf(&b, "  %s Loading more comments...\n", m.spinner.View())
	} else if m.comments.HasMore() {
		b.WriteString(common.TimestampStyle.Render("  m: more comments") + "\n")
	}
	return b.String()
}

func (m Model) renderComment(c domain.Comment, selected bool, width int) string {
	indent := "  "
	if c.IsReply() {
		indent = "      ↳ "
	}
	marker := "  "
	if selected {
		marker = common.ActiveActionStyle.Render("▸ ")
	}
	meta := renderAuthor(c.Author)
	if c.Local {
		meta += common.PendingActionStyle.Render(" (posting…)")
	} else if !c.CreatedAt.IsZero() {
		meta += common.TimestampStyle.Render(" · " + c.CreatedAt.Local().Format("Jan 02 15:04"))
	}

	var b strings.Builder
	b.WriteString(marker + indent + meta + "\n")
	pad := strings.Repeat(" ", ansi.StringWidth(indent)+2)
	for _, ln := range wrapText(c.Content, width-len(pad)) {
		b.WriteString(pad + common.ContentStyle.Render(ln) + "\n")
	}
	return b.String()
}

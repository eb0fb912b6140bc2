package compose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("terminalwager"))
		heading := m.target.Heading
		if heading == "" {
			heading = "New comment"
		}
		b.WriteString("  " + heading + "\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n")

		n := utf8.RuneCountInString(m.textarea.Value())
		counter := fmt.Sprintf("%d/%d chars", n, domain.MaxCommentLength)
		if n > domain.MaxCommentLength {
			counter = common.ErrorStyle.Render(counter)
		}
		b.WriteString(common.StatusBarStyle.Render("  ctrl+d: post • esc: cancel • " + counter))
		return b.String()
	}
	return ""
}

package feed

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncateText collapses whitespace and cuts text to width cells with an
// ellipsis.
func truncateText(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "…")
}

// wrapText wraps plain text to width cells, keeping explicit newlines.
func wrapText(text string, width int) []string {
	if width < 8 {
		width = 8
	}
	return strings.Split(ansi.Wordwrap(strings.TrimSpace(text), width, ""), "\n")
}

func clampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return max(w-6, 20)
}

// visibleCards is how many cards fit below the header.
func (m Model) visibleCards() int {
	h := m.height
	if h <= 0 {
		h = 40
	}
	return max((h-reservedLines)/cardHeight, 1)
}

func (m *Model) ensureSelectedVisible() {
	m.clampSelection()
	visible := m.visibleCards()
	if m.selected < m.startIndex {
		m.startIndex = m.selected
	}
	if m.selected >= m.startIndex+visible {
		m.startIndex = m.selected - visible + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}

func (m *Model) ensureRowVisible() {
	h := m.height
	if h <= 0 {
		h = 40
	}
	// Rows are comments, roughly three lines each under the prediction.
	visible := max((h-detailReservedLines)/3, 1)
	if m.row < m.detailStart {
		m.detailStart = m.row
	}
	if m.row >= m.detailStart+visible {
		m.detailStart = m.row - visible + 1
	}
}

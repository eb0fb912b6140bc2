package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalwager/app/interaction"
	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/tui/common"
)

const (
	cardHeight    = 7 // five content lines plus the border
	poolBarWidth  = 10
	reservedLines = 8
)

func (m Model) renderCard(e domain.Entity, selected bool, now time.Time) string {
	width := m.contentWidth()
	lines := []string{
		m.renderCardHeader(e, now),
		m.renderQuestion(e, width),
		renderPool("XP", e.PoolXP),
		renderPool("XC", e.PoolXC),
		m.renderActions(e),
	}
	body := clampLinesToWidth(strings.Join(lines, "\n"), width)
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width + 2).Render(body)
}

func (m Model) renderCardHeader(e domain.Entity, now time.Time) string {
	parts := []string{renderAuthor(e.Author)}
	if e.IsOwn {
		parts[0] += common.OwnBadgeStyle.Render("(you)")
	}
	parts = append(parts, common.CategoryInactiveStyle.Render(common.CategoryLabel(e.Category)))
	parts = append(parts, common.TimestampStyle.Render(renderResolution(e, now)))
	return strings.Join(parts, common.TimestampStyle.Render(" · "))
}

func renderAuthor(a domain.Author) string {
	out := common.AuthorStyle.Render("@" + a.Username)
	if a.Verified {
		out += common.BadgeStyle.Render(" ✓")
	}
	if a.Title != "" {
		out += common.BadgeStyle.Render(" " + a.Title)
	}
	for _, b := range a.Badges {
		out += common.BadgeStyle.Faint(true).Render(" [" + b + "]")
	}
	return out
}

func renderResolution(e domain.Entity, now time.Time) string {
	switch e.Resolution.State {
	case domain.ResolutionResolved:
		if e.Resolution.Outcome == nil {
			return "resolved"
		}
		if *e.Resolution.Outcome {
			return "resolved YES"
		}
		return "resolved NO"
	case domain.ResolutionSubmitted:
		return "resolution submitted"
	}
	if e.Expired(now) {
		return "awaiting resolution"
	}
	return common.TimeLeft(e.Deadline, now)
}

func (m Model) renderQuestion(e domain.Entity, width int) string {
	tag := ""
	if e.Media.HasAttachment() {
		tag = " [" + string(e.Media.Type) + "]"
	}
	q := e.Question
	if q == "" {
		q = e.Description
	}
	return common.ContentStyle.Render(truncateText(q, width-len(tag))) + common.TimestampStyle.Render(tag)
}

// renderPool draws one currency's pool as a bar with both sides' share and
// payout multiplier.
func renderPool(label string, p domain.Pool) string {
	yesCells := (p.YesPercent*poolBarWidth + 50) / 100
	bar := common.YesStyle.Render(strings.Repeat("█", yesCells)) +
		common.NoStyle.Render(strings.Repeat("░", poolBarWidth-yesCells))
	return fmt.Sprintf("%s %s %s %s",
		common.MetadataStyle.Render(label),
		bar,
		common.YesStyle.Render(fmt.Sprintf("YES %d%% %s", p.YesPercent, p.MultiplierLabel(domain.SideYes))),
		common.NoStyle.Render(fmt.Sprintf("NO %d%% %s", p.NoPercent, p.MultiplierLabel(domain.SideNo))),
	) + common.MetadataStyle.Render("  pot "+common.CompactCount(int(p.Total)))
}

func (m Model) renderActions(e domain.Entity) string {
	var parts []string
	if st, ok := m.stateFor(e, interaction.Like); ok {
		parts = append(parts, renderToggle(st, "♥", "♡", true))
	}
	if st, ok := m.stateFor(e, interaction.Repost); ok {
		parts = append(parts, renderToggle(st, "⟲", "⟲", true))
	}
	parts = append(parts, common.MetadataStyle.Render("↩ "+common.CompactCount(m.commentCount(e))))
	if st, ok := m.stateFor(e, interaction.Bookmark); ok {
		parts = append(parts, renderToggle(st, "saved", "save", false))
	}
	if st, ok := m.stateFor(e, interaction.Follow); ok {
		parts = append(parts, renderToggle(st, "following", "+ follow", false))
	}
	return strings.Join(parts, "  ")
}

func renderToggle(st interaction.State, on, off string, withCount bool) string {
	icon := off
	style := common.MetadataStyle
	if st.Active() {
		icon = on
		style = common.ActiveActionStyle
	}
	if st.Phase() == interaction.Pending {
		style = common.PendingActionStyle
	}
	text := icon
	if withCount {
		text += " " + common.CompactCount(st.Count())
	}
	return style.Render(text)
}

// renderCategoryTabs lists the categories with the active one highlighted.
func (m Model) renderCategoryTabs() string {
	tabs := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		label := common.CategoryLabel(c)
		if c == m.category {
			tabs = append(tabs, common.CategoryStyle.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, common.CategoryInactiveStyle.Render(label))
	}
	return lipgloss.NewStyle().MarginLeft(1).Render(strings.Join(tabs, " "))
}

package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A97F")).
			Padding(1, 2, 0, 1)

	// CategoryStyle styles the active category tab.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// CategoryInactiveStyle styles the other category tabs.
	CategoryInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D"))

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// BadgeStyle styles verification and title badges next to authors.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C6A0F6"))

	// TimestampStyle styles timestamps and deadlines.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles question and comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the currently selected card.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F5A97F")).
			Padding(0, 1)

	// UnselectedStyle gives other cards a subtle border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// OwnBadgeStyle highlights predictions that belong to the user.
	OwnBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true).
			MarginLeft(1)

	// MetadataStyle styles counters.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8087A2"))

	// ActiveActionStyle styles an interaction the user has turned on.
	ActiveActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ED8796")).
				Bold(true)

	// PendingActionStyle styles an interaction waiting for the server.
	PendingActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EED49F")).
				Faint(true)

	// YesStyle and NoStyle color the two sides of a pool bar.
	YesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95"))
	NoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ED8796"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// NoticeStyle styles the single-line notice after a failed action.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F"))

	// ExpiredBadgeStyle styles the pending-resolution counter in the header.
	ExpiredBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1E2030")).
				Background(lipgloss.Color("#EED49F")).
				Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)

package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/infra/editor"
)

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// Target is what a comment answers: a prediction, or a root comment on it.
type Target struct {
	EntityID string
	ParentID string // Empty for a root comment
	Heading  string // e.g. "Replying to @ada"
}

// DoneMsg is sent when composing is complete (success or cancel).
type DoneMsg struct {
	Content string // Empty if cancelled
	Target  Target
	Err     error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the compose view.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	target   Target
	status   string
	textarea textarea.Model // Only used in inline mode
}

// NewEditor creates a compose model that opens $EDITOR via tea.ExecProcess.
func NewEditor(ed *editor.EnvEditor, target Target) Model {
	return Model{
		mode:   editorMode,
		editor: ed,
		target: target,
		status: "Opening editor...",
	}
}

// NewInline creates a compose model with an inline textarea.
func NewInline(target Target) Model {
	ta := textarea.New()
	ta.Placeholder = "Add to the discussion..."
	ta.CharLimit = domain.MaxCommentLength
	ta.SetWidth(72)
	ta.SetHeight(5)
	ta.Focus()

	return Model{
		mode:     inlineMode,
		target:   target,
		textarea: ta,
	}
}

// Target returns what the comment answers.
func (m Model) Target() Target {
	return m.target
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor suspends Bubble Tea's raw terminal mode while the editor runs.
func (m Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd("", m.target.Heading)
	if err != nil {
		target := m.target
		return func() tea.Msg {
			return DoneMsg{Target: target, Err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{Target: m.target, Err: fmt.Errorf("editor: %w", msg.err)})
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{Target: m.target, Err: err})
		}
		return m, done(DoneMsg{Content: content, Target: m.target})

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}
		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Target: m.target})
		case "ctrl+d", "ctrl+s":
			return m, done(DoneMsg{Content: strings.TrimSpace(m.textarea.Value()), Target: m.target})
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/infra/config"
	"github.com/CrestNiraj12/terminalwager/infra/editor"
	"github.com/CrestNiraj12/terminalwager/tui/common"
	"github.com/CrestNiraj12/terminalwager/tui/compose"
	"github.com/CrestNiraj12/terminalwager/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed        feed.Services
	Session     app.Session
	Editor      *editor.EnvEditor
	Options     feed.Options
	UIStatePath string // Empty disables persisting the active category
}

type activeView int

const (
	feedView activeView = iota
	composeView
)

// uiStateSavedMsg reports the result of persisting the UI state.
type uiStateSavedMsg struct {
	err error
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	feed    feed.Model
	compose compose.Model
	keys    common.KeyMap
	status  string // Transient status message (e.g. "Cancelled.")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed:   feed.New(deps.Feed, deps.Session, deps.Options),
		keys:   common.DefaultKeyMap(),
	}
}

// Init delegates to the feed.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == feedView {
			if key.Matches(msg, a.keys.Quit) && !a.feed.IsInDetailView() {
				return a, tea.Quit
			}
			a.status = ""
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.compose, cmd = a.compose.Update(msg)
		return a, cmd

	case feed.ComposeCommentMsg:
		target := compose.Target{EntityID: msg.EntityID, ParentID: msg.ParentID, Heading: msg.Heading}
		if msg.UseEditor && a.deps.Editor != nil {
			a.compose = compose.NewEditor(a.deps.Editor, target)
		} else {
			a.compose = compose.NewInline(target)
		}
		a.active = composeView
		a.status = ""
		return a, a.compose.Init()

	case compose.DoneMsg:
		a.active = feedView
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Content == "" {
			a.status = "Cancelled."
			return a, nil
		}
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.SubmitCommentMsg{
			EntityID: msg.Target.EntityID,
			ParentID: msg.Target.ParentID,
			Content:  msg.Content,
		})
		return a, cmd

	case feed.CategoryChangedMsg:
		return a, a.saveUIState(msg.Category)

	case uiStateSavedMsg:
		if msg.err != nil {
			a.status = "Could not save UI state: " + msg.err.Error()
		}
		return a, nil
	}

	// Async results belong to the feed even while composing.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	cmds = append(cmds, cmd)
	if a.active == composeView {
		a.compose, cmd = a.compose.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) saveUIState(category string) tea.Cmd {
	path := a.deps.UIStatePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return uiStateSavedMsg{err: config.SaveUIState(path, config.UIState{Category: category})}
	}
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case feedView:
		s = a.feed.View()
	case composeView:
		s = a.compose.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}

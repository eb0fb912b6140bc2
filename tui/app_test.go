package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/infra/config"
	"github.com/CrestNiraj12/terminalwager/tui/compose"
	"github.com/CrestNiraj12/terminalwager/tui/feed"
)

type stubPredictions struct{}

func (stubPredictions) FetchPage(context.Context, app.PredictionQuery) ([]domain.Entity, error) {
	return nil, nil
}

type stubComments struct{}

func (stubComments) FetchComments(context.Context, string, int, int) ([]domain.Comment, error) {
	return nil, nil
}

func (stubComments) PostComment(_ context.Context, entityID, content, parentID string) (domain.Comment, error) {
	return domain.Comment{ID: "c1", EntityID: entityID, Content: content, ParentID: parentID}, nil
}

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(Deps{
		Feed: feed.Services{
			Predictions: stubPredictions{},
			Comments:    stubComments{},
		},
		Session:     app.Session{User: app.User{ID: "me", Username: "me"}},
		Options:     feed.Options{PageSize: 10},
		UIStatePath: filepath.Join(t.TempDir(), "ui_state.json"),
	})
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("expected App, got %T", m)
	}
	return next, cmd
}

func TestCompose_CancelReturnsToFeed(t *testing.T) {
	a := newTestApp(t)

	a, _ = update(t, a, feed.ComposeCommentMsg{EntityID: "p1", Heading: "Commenting on: p1"})
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	done, ok := cmd().(compose.DoneMsg)
	if !ok {
		t.Fatalf("expected DoneMsg from esc")
	}
	a, _ = update(t, a, done)
	if a.active != feedView || a.status != "Cancelled." {
		t.Fatalf("expected cancel back on feed, got active=%v status=%q", a.active, a.status)
	}
}

func TestCompose_SubmitForwardsToFeed(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, feed.ComposeCommentMsg{EntityID: "p1", ParentID: "r1"})

	a, cmd := update(t, a, compose.DoneMsg{
		Content: "called it",
		Target:  compose.Target{EntityID: "p1", ParentID: "r1"},
	})
	if a.active != feedView {
		t.Fatalf("expected feed view after submit")
	}
	posted, ok := cmd().(feed.CommentPostedMsg)
	if !ok {
		t.Fatalf("expected comment post request")
	}
	if posted.Err != nil || posted.Comment.ParentID != "r1" || posted.Comment.Content != "called it" {
		t.Fatalf("unexpected post result %#v", posted)
	}
}

func TestCategoryChange_PersistsUIState(t *testing.T) {
	a := newTestApp(t)

	a, cmd := update(t, a, feed.CategoryChangedMsg{Category: "sports"})
	a, _ = update(t, a, cmd())
	if a.status != "" {
		t.Fatalf("unexpected status %q", a.status)
	}

	st, err := config.LoadUIState(a.deps.UIStatePath)
	if err != nil {
		t.Fatalf("load ui state: %v", err)
	}
	if st.Category != "sports" {
		t.Fatalf("expected sports persisted, got %q", st.Category)
	}
}

func TestQuit_OnlyOutsideCompose(t *testing.T) {
	a := newTestApp(t)

	_, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected q to quit from the feed")
	}

	a, _ = update(t, a, feed.ComposeCommentMsg{EntityID: "p1"})
	_, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("q must type into the composer, not quit")
		}
	}
}

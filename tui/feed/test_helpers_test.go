package feed

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/domain"
)

type stubPredictions struct {
	pages map[int][]domain.Entity
	err   error
}

func (s *stubPredictions) FetchPage(_ context.Context, q app.PredictionQuery) ([]domain.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[q.Page], nil
}

type stubComments struct {
	list    []domain.Comment
	postErr error
	nextID  string
}

func (s *stubComments) FetchComments(context.Context, string, int, int) ([]domain.Comment, error) {
	return s.list, nil
}

func (s *stubComments) PostComment(_ context.Context, entityID, content, parentID string) (domain.Comment, error) {
	if s.postErr != nil {
		return domain.Comment{}, s.postErr
	}
	return domain.Comment{
		ID:       s.nextID,
		EntityID: entityID,
		Author:   domain.Author{ID: "me", Username: "me"},
		Content:  content,
		ParentID: parentID,
	}, nil
}

type stubSocial struct {
	followErr error
	following bool
	statusErr error
}

func (s *stubSocial) Follow(context.Context, string) error   { return s.followErr }
func (s *stubSocial) Unfollow(context.Context, string) error { return s.followErr }
func (s *stubSocial) FollowStatus(context.Context, string) (bool, error) {
	return s.following, s.statusErr
}

// stubToggles serves likes, reposts and bookmarks.
type stubToggles struct {
	err error
}

func (s *stubToggles) Like(context.Context, string) error       { return s.err }
func (s *stubToggles) Unlike(context.Context, string) error     { return s.err }
func (s *stubToggles) Repost(context.Context, string) error     { return s.err }
func (s *stubToggles) Unrepost(context.Context, string) error   { return s.err }
func (s *stubToggles) Bookmark(context.Context, string) error   { return s.err }
func (s *stubToggles) Unbookmark(context.Context, string) error { return s.err }

type testDeps struct {
	predictions *stubPredictions
	comments    *stubComments
	social      *stubSocial
	toggles     *stubToggles
}

func newTestDeps() *testDeps {
	return &testDeps{
		predictions: &stubPredictions{pages: map[int][]domain.Entity{}},
		comments:    &stubComments{nextID: "srv-1"},
		social:      &stubSocial{},
		toggles:     &stubToggles{},
	}
}

func (d *testDeps) services() Services {
	return Services{
		Predictions: d.predictions,
		Comments:    d.comments,
		Social:      d.social,
		Reposts:     d.toggles,
		Bookmarks:   d.toggles,
		Likes:       d.toggles,
	}
}

func newTestModel(d *testDeps, interests ...string) Model {
	session := app.Session{
		User:      app.User{ID: "me", Username: "me", DisplayName: "Me"},
		Interests: interests,
	}
	m := New(d.services(), session, Options{PageSize: 2})
	m.width = 100
	m.height = 40
	return m
}

func makeEntity(id, category string) domain.Entity {
	return domain.Entity{
		ID:       id,
		Author:   domain.Author{ID: "author-" + id, Username: "user" + id, DisplayName: "User " + id},
		Question: "Will " + id + " happen?",
		Deadline: time.Now().Add(48 * time.Hour),
		PoolXP:   domain.NewPool(50, 50, 100),
		PoolXC:   domain.NewPool(0, 0, 0),
		Counters: domain.Counters{Likes: 3, Reposts: 1, Comments: 2},
		Category: category,
		Resolution: domain.Resolution{
			State: domain.ResolutionPending,
		},
	}
}

// loadFirstPage delivers page 1 for the model's pending request.
func loadFirstPage(m Model, entities ...domain.Entity) Model {
	m, _ = m.Update(PageLoadedMsg{Entities: entities, Page: 1, QueryKey: m.category, ReqSeq: m.reqSeq})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and returns its message, or nil.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// collect executes cmd and flattens batches, skipping spinner ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	msg := run(cmd)
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func ids(items []domain.Entity) string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return strings.Join(out, ",")
}

package feed

import (
	"errors"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app/interaction"
	"github.com/CrestNiraj12/terminalwager/app/paging"
	"github.com/CrestNiraj12/terminalwager/app/ranking"
	"github.com/CrestNiraj12/terminalwager/domain"
)

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.category {
			return m, nil
		}
		anchorID := m.selectedID()

		m.seed(msg.Entities)
		for _, e := range msg.Entities {
			// The server count now includes comments posted before the fetch.
			delete(m.posted, e.ID)
		}
		all, more := m.cursor.Advance(ranking.Rank(msg.Entities, m.session.Interests))
		m.items = dedupeByID(all)
		m.loading = false
		m.err = nil
		m.stale = false
		m.lastGood[m.category] = m.items

		if msg.Page <= 1 {
			m.selected = 0
			m.startIndex = 0
			m.notice = ""
		} else {
			m.selectByID(anchorID)
			m.notice = ""
			if !more {
				m.notice = "End of the feed."
			}
		}
		m.ensureSelectedVisible()
		return m, nil

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.category {
			return m, nil
		}
		m.cursor.Fail()
		m.loading = false
		if msg.Page > 1 {
			m.notice = "Could not load more: " + msg.Err.Error()
			return m, nil
		}
		if cached := m.lastGood[m.category]; len(cached) > 0 {
			m.items = cached
			m.stale = true
			m.err = nil
			m.notice = "Offline, showing cached predictions: " + msg.Err.Error()
			m.clampSelection()
			return m, nil
		}
		m.items = nil
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

// beginRefresh restarts paging for the active category. Displayed items stay
// until the first page answers.
func (m *Model) beginRefresh() tea.Cmd {
	m.reqSeq++
	m.cursor.Reset()
	page, _ := m.cursor.Begin()
	m.loading = true
	m.err = nil
	return m.fetchPage(page, m.reqSeq)
}

func (m *Model) loadMore() tea.Cmd {
	if m.loading {
		return nil
	}
	if m.stale {
		return m.beginRefresh()
	}
	page, err := m.cursor.Begin()
	switch {
	case errors.Is(err, paging.ErrExhausted):
		if len(m.items) > 0 {
			m.notice = "End of the feed."
		}
		return nil
	case err != nil:
		return nil
	}
	m.notice = "Loading more..."
	return m.fetchPage(page, m.reqSeq)
}

// maybePrefetch loads the next page when the selection nears the end.
func (m *Model) maybePrefetch() tea.Cmd {
	if m.loading || m.stale || m.cursor.InFlight() || !m.cursor.HasMore() {
		return nil
	}
	if len(m.items) == 0 || m.selected < len(m.items)-prefetchTrigger {
		return nil
	}
	return m.loadMore()
}

func (m *Model) switchCategory(delta int) tea.Cmd {
	n := len(m.categories)
	if n == 0 {
		return nil
	}
	idx := slices.Index(m.categories, m.category)
	next := ((idx+delta)%n + n) % n
	if m.categories[next] == m.category {
		return nil
	}
	m.category = m.categories[next]
	m.items = m.lastGood[m.category]
	m.selected = 0
	m.startIndex = 0
	m.stale = false
	m.notice = ""
	m.tracker.Reset()
	return tea.Batch(m.beginRefresh(), categoryChanged(m.category))
}

// seed records the server's interaction state for freshly fetched entities.
func (m *Model) seed(entities []domain.Entity) {
	if s, ok := m.svc.Likes.(likeSeeder); ok {
		s.Seed(entities)
	}
	for _, e := range entities {
		for _, kind := range []interaction.Kind{interaction.Like, interaction.Repost, interaction.Bookmark, interaction.Follow} {
			key, ok := m.keyFor(e, kind)
			if !ok {
				continue
			}
			active, count := baseline(e, kind)
			m.tracker.Seed(key, active, count)
		}
	}
}

// keyFor returns the tracker key of an interaction on e. Follow is keyed by
// the author and is unavailable for the user's own predictions.
func (m Model) keyFor(e domain.Entity, kind interaction.Kind) (interaction.Key, bool) {
	if kind != interaction.Follow {
		return interaction.Key{ID: e.ID, Kind: kind}, e.ID != ""
	}
	if e.Author.ID == "" || e.IsOwn || m.session.IsSelf(e.Author.ID) {
		return interaction.Key{}, false
	}
	return interaction.Key{ID: e.Author.ID, Kind: kind}, true
}

func baseline(e domain.Entity, kind interaction.Kind) (bool, int) {
	switch kind {
	case interaction.Like:
		return e.IsLiked, e.Counters.Likes
	case interaction.Repost:
		return e.IsReposted, e.Counters.Reposts
	case interaction.Bookmark:
		return e.IsBookmarked, 0
	case interaction.Follow:
		return e.Author.Following, 0
	}
	return false, 0
}

// stateFor returns the displayed interaction state of e.
func (m Model) stateFor(e domain.Entity, kind interaction.Kind) (interaction.State, bool) {
	key, ok := m.keyFor(e, kind)
	if !ok {
		return interaction.State{}, false
	}
	if st, ok := m.tracker.Get(key); ok {
		return st, true
	}
	active, count := baseline(e, kind)
	return interaction.New(kind, active, count), true
}

func dedupeByID(items []domain.Entity) []domain.Entity {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Entity, 0, len(items))
	for _, e := range items {
		if e.ID != "" {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
		}
		out = append(out, e)
	}
	return out
}

func (m Model) selectedID() string {
	if m.selected < 0 || m.selected >= len(m.items) {
		return ""
	}
	return m.items[m.selected].ID
}

func (m *Model) selectByID(id string) {
	if id == "" {
		m.clampSelection()
		return
	}
	for i, e := range m.items {
		if e.ID == id {
			m.selected = i
			return
		}
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

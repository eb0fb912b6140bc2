package feed

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/app/interaction"
	"github.com/CrestNiraj12/terminalwager/app/paging"
	"github.com/CrestNiraj12/terminalwager/domain"
	"github.com/CrestNiraj12/terminalwager/tui/common"
)

const (
	commentPageSize = 50
	prefetchTrigger = 3
)

// defaultCategories is the tab order; the empty category shows everything.
var defaultCategories = []string{"", "crypto", "sports", "politics", "tech", "entertainment", "general"}

// PageLoadedMsg is sent when a page of predictions arrives.
type PageLoadedMsg struct {
	Entities []domain.Entity
	Page     int
	QueryKey string
	ReqSeq   int
}

// PageErrorMsg is sent when a page fetch fails.
type PageErrorMsg struct {
	Err      error
	Page     int
	QueryKey string
	ReqSeq   int
}

// ToggleResultMsg carries the API answer to an optimistic toggle.
type ToggleResultMsg struct {
	Key interaction.Key
	On  bool // Direction that was requested
	Err error
}

// FollowStatusMsg carries the authoritative follow state fetched after a
// conflict.
type FollowStatusMsg struct {
	UserID    string
	Following bool
	Err       error
}

// CommentsLoadedMsg is sent when a page of comments arrives.
type CommentsLoadedMsg struct {
	EntityID string
	Comments []domain.Comment
	ReqSeq   int
}

// CommentsErrorMsg is sent when a comment fetch fails.
type CommentsErrorMsg struct {
	EntityID string
	Err      error
	ReqSeq   int
}

// ComposeCommentMsg asks the root to open a composer.
type ComposeCommentMsg struct {
	EntityID  string
	ParentID  string
	Heading   string
	UseEditor bool
}

// SubmitCommentMsg hands composed text back to the feed.
type SubmitCommentMsg struct {
	EntityID string
	ParentID string
	Content  string
}

// CommentPostedMsg is sent after a comment was published (or failed).
type CommentPostedMsg struct {
	LocalID  string
	EntityID string
	Comment  domain.Comment
	Err      error
}

// ExpiredMsg reports predictions past their deadline and still unresolved.
type ExpiredMsg struct {
	Entities []domain.Entity
}

// CategoryChangedMsg tells the root to persist the active category.
type CategoryChangedMsg struct {
	Category string
}

// Services are the application services the feed calls.
type Services struct {
	Predictions app.PredictionService
	Comments    app.CommentService
	Social      app.SocialService
	Reposts     app.RepostService
	Bookmarks   app.BookmarkService
	Likes       app.LikeService
}

// Options tune the initial feed.
type Options struct {
	Category   string
	Categories []string
	PageSize   int
}

// likeSeeder is implemented by like services that keep state locally.
type likeSeeder interface {
	Seed([]domain.Entity)
}

type modelServices struct {
	svc     Services
	session app.Session
}

type feedState struct {
	category   string
	categories []string
	cursor     paging.Cursor[domain.Entity]
	items      []domain.Entity
	selected   int
	loading    bool
	err        error
	stale      bool // items come from the cache after a failed fetch
	lastGood   map[string][]domain.Entity
	reqSeq     int
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	width        int
	height       int
	startIndex   int
	notice       string // Single-line notice, replaced by the next one
	showAllHints bool
	expired      int
}

type detailState struct {
	showDetail  bool
	entity      domain.Entity
	comments    paging.Cursor[domain.Comment]
	threads     []domain.Thread
	local       []domain.Comment // Optimistic comments not yet confirmed
	posted      map[string]int   // Confirmed comments per entity since fetch
	loadingMore bool
	commentErr  error
	row         int // 0 is the prediction, 1..n the flattened comments
	detailStart int
	commentSeq  int
}

// Model holds the state for the feed view and its detail surface.
type Model struct {
	modelServices
	feedState
	uiState
	detailState
	tracker *interaction.Tracker
}

// New creates a feed model with injected dependencies.
func New(svc Services, session app.Session, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	categories := opts.Categories
	if len(categories) == 0 {
		categories = defaultCategories
	}
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	if !slices.Contains(categories, category) {
		categories = append(slices.Clone(categories), category)
	}

	m := Model{
		modelServices: modelServices{svc: svc, session: session},
		feedState: feedState{
			category:   category,
			categories: categories,
			cursor:     paging.New[domain.Entity](opts.PageSize),
			loading:    true,
			lastGood:   make(map[string][]domain.Entity),
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
		detailState: detailState{
			comments: paging.New[domain.Comment](commentPageSize),
			posted:   make(map[string]int),
		},
		tracker: interaction.NewTracker(),
	}
	// Reserve the first page here: Init cannot change the model.
	_, _ = m.cursor.Begin()
	return m
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPage(1, m.reqSeq), m.spinner.Tick)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Category returns the active category.
func (m Model) Category() string { return m.category }

// Items returns the displayed predictions.
func (m Model) Items() []domain.Entity { return m.items }

// IsInDetailView reports whether the detail surface is open.
func (m Model) IsInDetailView() bool { return m.showDetail }

// Notice returns the current status-line notice.
func (m Model) Notice() string { return m.notice }

// Selected returns the highlighted prediction, if any.
func (m Model) Selected() (domain.Entity, bool) {
	if m.showDetail {
		return m.entity, true
	}
	if m.selected < 0 || m.selected >= len(m.items) {
		return domain.Entity{}, false
	}
	return m.items[m.selected], true
}

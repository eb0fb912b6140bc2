package feed

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/CrestNiraj12/terminalwager/app/paging"
	"github.com/CrestNiraj12/terminalwager/app/thread"
	"github.com/CrestNiraj12/terminalwager/domain"
)

func (m Model) handleDetailThreadMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		if !m.showDetail || msg.ReqSeq != m.commentSeq || msg.EntityID != m.entity.ID {
			return m, nil
		}
		m.comments.Advance(msg.Comments)
		m.commentErr = nil
		m.rebuildThreads()
		return m, nil

	case CommentsErrorMsg:
		if !m.showDetail || msg.ReqSeq != m.commentSeq || msg.EntityID != m.entity.ID {
			return m, nil
		}
		m.comments.Fail()
		m.commentErr = msg.Err
		return m, nil

	case SubmitCommentMsg:
		content, err := domain.ValidateComment(msg.Content)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyComment) {
				m.notice = "Comment cancelled."
			} else {
				m.notice = "Comment not posted: " + err.Error()
			}
			return m, nil
		}
		local := domain.Comment{
			ID:        "local-" + uuid.NewString(),
			EntityID:  msg.EntityID,
			Author:    m.selfAuthor(),
			Content:   content,
			ParentID:  msg.ParentID,
			CreatedAt: time.Now(),
			Local:     true,
		}
		if m.showDetail && m.entity.ID == msg.EntityID {
			m.local = append(m.local, local)
			m.rebuildThreads()
		}
		m.notice = "Posting comment..."
		return m, m.postComment(local.ID, msg.EntityID, content, msg.ParentID)

	case CommentPostedMsg:
		idx := -1
		for i, c := range m.local {
			if c.ID == msg.LocalID {
				idx = i
				break
			}
		}
		if msg.Err != nil {
			if idx >= 0 {
				m.local = append(m.local[:idx], m.local[idx+1:]...)
			}
			m.notice = "Could not post comment: " + msg.Err.Error()
		} else {
			m.posted[msg.EntityID]++
			if idx >= 0 {
				c := msg.Comment
				if c.ID == "" {
					c.ID = msg.LocalID
				}
				c.Local = false
				m.local[idx] = c
			}
			m.notice = "Comment posted."
		}
		if m.showDetail && m.entity.ID == msg.EntityID {
			m.rebuildThreads()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) openDetail() tea.Cmd {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	m.showDetail = true
	m.entity = e
	m.threads = []domain.Thread{}
	m.local = nil
	m.row = 0
	m.detailStart = 0
	m.commentErr = nil
	m.notice = ""
	m.comments.Reset()
	m.commentSeq++
	page, _ := m.comments.Begin()
	return m.fetchComments(e.ID, page, m.commentSeq)
}

func (m *Model) closeDetail() {
	m.showDetail = false
	m.threads = nil
	m.local = nil
	m.comments.Reset()
	m.commentSeq++
	m.ensureSelectedVisible()
}

func (m *Model) loadMoreComments() tea.Cmd {
	page, err := m.comments.Begin()
	if err != nil {
		if errors.Is(err, paging.ErrExhausted) {
			m.notice = "No more comments."
		}
		return nil
	}
	return m.fetchComments(m.entity.ID, page, m.commentSeq)
}

// rebuildThreads regroups fetched comments and lays client-side comments
// over them. A client comment the server already returned is skipped.
func (m *Model) rebuildThreads() {
	fetched := m.comments.Items()
	threads := thread.Build(fetched)
	seen := make(map[string]struct{}, len(fetched))
	for _, c := range fetched {
		seen[c.ID] = struct{}{}
	}
	for _, c := range m.local {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		threads, _ = thread.Insert(threads, c)
	}
	m.threads = threads
	if n := thread.Count(m.threads); m.row > n {
		m.row = n
	}
}

// detailComments returns the comments in display order.
func (m Model) detailComments() []domain.Comment {
	return thread.Flatten(m.threads)
}

// selectedComment returns the comment under the detail cursor.
func (m Model) selectedComment() (domain.Comment, bool) {
	if m.row <= 0 {
		return domain.Comment{}, false
	}
	comments := m.detailComments()
	if m.row > len(comments) {
		return domain.Comment{}, false
	}
	return comments[m.row-1], true
}

// composeTarget returns the composer request for a comment on the open
// prediction. Replies always attach to a root: threads are two levels deep.
func (m Model) composeTarget(reply, useEditor bool) ComposeCommentMsg {
	target := ComposeCommentMsg{
		EntityID:  m.entity.ID,
		Heading:   "Commenting on: " + truncateText(m.entity.Question, 60),
		UseEditor: useEditor,
	}
	if !reply {
		return target
	}
	c, ok := m.selectedComment()
	if !ok {
		return target
	}
	parentID := c.ID
	if c.IsReply() {
		parentID = c.ParentID
	}
	target.ParentID = parentID
	target.Heading = "Replying to @" + c.Author.Username
	return target
}

func (m Model) commentCount(e domain.Entity) int {
	return e.Counters.Comments + m.posted[e.ID]
}

func (m Model) selfAuthor() domain.Author {
	u := m.session.User
	username := u.Username
	if username == "" {
		username = "you"
	}
	display := u.DisplayName
	if display == "" {
		display = "You"
	}
	return domain.Author{ID: u.ID, Username: username, DisplayName: display}
}

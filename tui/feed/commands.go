package feed

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/app/interaction"
)

func (m Model) fetchPage(page, reqSeq int) tea.Cmd {
	predictions := m.svc.Predictions
	q := app.PredictionQuery{
		Page:     page,
		Limit:    m.cursor.PageSize(),
		Category: m.category,
	}
	queryKey := m.category
	return func() tea.Msg {
		entities, err := predictions.FetchPage(context.Background(), q)
		if err != nil {
			return PageErrorMsg{Err: err, Page: page, QueryKey: queryKey, ReqSeq: reqSeq}
		}
		return PageLoadedMsg{Entities: entities, Page: page, QueryKey: queryKey, ReqSeq: reqSeq}
	}
}

func (m Model) fetchComments(entityID string, page, reqSeq int) tea.Cmd {
	comments := m.svc.Comments
	limit := m.comments.PageSize()
	return func() tea.Msg {
		list, err := comments.FetchComments(context.Background(), entityID, page, limit)
		if err != nil {
			return CommentsErrorMsg{EntityID: entityID, Err: err, ReqSeq: reqSeq}
		}
		return CommentsLoadedMsg{EntityID: entityID, Comments: list, ReqSeq: reqSeq}
	}
}

// sendToggle performs the request for an optimistic toggle. on is the value
// the user asked for.
func (m Model) sendToggle(key interaction.Key, on bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch key.Kind {
		case interaction.Like:
			if on {
				err = svc.Likes.Like(ctx, key.ID)
			} else {
				err = svc.Likes.Unlike(ctx, key.ID)
			}
		case interaction.Repost:
			if on {
				err = svc.Reposts.Repost(ctx, key.ID)
			} else {
				err = svc.Reposts.Unrepost(ctx, key.ID)
			}
		case interaction.Bookmark:
			if on {
				err = svc.Bookmarks.Bookmark(ctx, key.ID)
			} else {
				err = svc.Bookmarks.Unbookmark(ctx, key.ID)
			}
		case interaction.Follow:
			if on {
				err = svc.Social.Follow(ctx, key.ID)
			} else {
				err = svc.Social.Unfollow(ctx, key.ID)
			}
		default:
			err = fmt.Errorf("unknown interaction %q", key.Kind)
		}
		return ToggleResultMsg{Key: key, On: on, Err: err}
	}
}

func (m Model) fetchFollowStatus(userID string) tea.Cmd {
	social := m.svc.Social
	return func() tea.Msg {
		following, err := social.FollowStatus(context.Background(), userID)
		return FollowStatusMsg{UserID: userID, Following: following, Err: err}
	}
}

func (m Model) postComment(localID, entityID, content, parentID string) tea.Cmd {
	comments := m.svc.Comments
	return func() tea.Msg {
		c, err := comments.PostComment(context.Background(), entityID, content, parentID)
		return CommentPostedMsg{LocalID: localID, EntityID: entityID, Comment: c, Err: err}
	}
}

func categoryChanged(category string) tea.Cmd {
	return func() tea.Msg { return CategoryChangedMsg{Category: category} }
}

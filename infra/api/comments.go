package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// commentService implements app.CommentService.
type commentService struct {
	client *Client
}

func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

func (s *commentService) FetchComments(ctx context.Context, entityID string, page, limit int) ([]domain.Comment, error) {
	path := fmt.Sprintf("/posts/%s/comments?page=%d&limit=%d", url.PathEscape(entityID), page, limit)
	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	records, err := decodeList(data, "data", "comments")
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	comments := mapComments(records)
	for i := range comments {
		if comments[i].EntityID == "" {
			comments[i].EntityID = entityID
		}
	}
	return comments, nil
}

type postCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// PostComment validates the content locally before any network call.
func (s *commentService) PostComment(ctx context.Context, entityID, content, parentID string) (domain.Comment, error) {
	content, err := domain.ValidateComment(content)
	if err != nil {
		return domain.Comment{}, err
	}

	path := fmt.Sprintf("/posts/%s/comments", url.PathEscape(entityID))
	data, err := s.client.Post(ctx, path, postCommentRequest{Content: content, ParentID: parentID})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("posting comment: %w", err)
	}

	var raw rawComment
	decodeRecord(decodeObject(data, "data", "comment"), &raw)
	c := MapComment(raw)
	if c.EntityID == "" {
		c.EntityID = entityID
	}
	if c.Content == "" {
		c.Content = content
	}
	if c.ParentID == "" {
		c.ParentID = parentID
	}
	return c, nil
}

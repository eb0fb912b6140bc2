package api

import (
	"context"
	"fmt"
	"net/url"
)

// bookmarkService implements app.BookmarkService.
type bookmarkService struct {
	client *Client
}

func NewBookmarkService(client *Client) *bookmarkService {
	return &bookmarkService{client: client}
}

type bookmarkRequest struct {
	PredictionID string `json:"prediction_id"`
}

func (s *bookmarkService) Bookmark(ctx context.Context, entityID string) error {
	if _, err := s.client.Post(ctx, "/bookmarks", bookmarkRequest{PredictionID: entityID}); err != nil {
		return fmt.Errorf("bookmarking: %w", err)
	}
	return nil
}

func (s *bookmarkService) Unbookmark(ctx context.Context, entityID string) error {
	if _, err := s.client.Delete(ctx, "/bookmarks/"+url.PathEscape(entityID)); err != nil {
		return fmt.Errorf("removing bookmark: %w", err)
	}
	return nil
}

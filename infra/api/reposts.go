package api

import (
	"context"
	"fmt"
	"net/url"
)

// repostService implements app.RepostService.
type repostService struct {
	client *Client
}

func NewRepostService(client *Client) *repostService {
	return &repostService{client: client}
}

func (s *repostService) Repost(ctx context.Context, entityID string) error {
	if _, err := s.client.Post(ctx, repostPath(entityID), nil); err != nil {
		return fmt.Errorf("reposting: %w", err)
	}
	return nil
}

func (s *repostService) Unrepost(ctx context.Context, entityID string) error {
	if _, err := s.client.Delete(ctx, repostPath(entityID)); err != nil {
		return fmt.Errorf("removing repost: %w", err)
	}
	return nil
}

func repostPath(entityID string) string {
	return "/predictions/" + url.PathEscape(entityID) + "/repost"
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// socialService implements app.SocialService.
type socialService struct {
	client *Client
}

func NewSocialService(client *Client) *socialService {
	return &socialService{client: client}
}

func (s *socialService) Follow(ctx context.Context, userID string) error {
	if _, err := s.client.Post(ctx, followPath(userID), nil); err != nil {
		return fmt.Errorf("following user: %w", err)
	}
	return nil
}

func (s *socialService) Unfollow(ctx context.Context, userID string) error {
	if _, err := s.client.Delete(ctx, followPath(userID)); err != nil {
		return fmt.Errorf("unfollowing user: %w", err)
	}
	return nil
}

func (s *socialService) FollowStatus(ctx context.Context, userID string) (bool, error) {
	data, err := s.client.Get(ctx, followPath(userID)+"-status")
	if err != nil {
		return false, fmt.Errorf("fetching follow status: %w", err)
	}
	var resp struct {
		Following   *flexBool `json:"following"`
		IsFollowing *flexBool `json:"is_following"`
		Data        *struct {
			Following flexBool `json:"following"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return false, fmt.Errorf("parsing follow status: %w", err)
	}
	switch {
	case resp.Following != nil:
		return bool(*resp.Following), nil
	case resp.IsFollowing != nil:
		return bool(*resp.IsFollowing), nil
	case resp.Data != nil:
		return bool(resp.Data.Following), nil
	}
	return false, nil
}

func followPath(userID string) string {
	return "/social/users/" + url.PathEscape(userID) + "/follow"
}

package app

import "context"

// SocialService manages follow relationships between users.
type SocialService interface {
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error

	// FollowStatus returns the server's authoritative follow state.
	FollowStatus(ctx context.Context, userID string) (bool, error)
}

// RepostService reposts predictions to the user's followers.
type RepostService interface {
	Repost(ctx context.Context, entityID string) error
	Unrepost(ctx context.Context, entityID string) error
}

// BookmarkService saves predictions for later.
type BookmarkService interface {
	Bookmark(ctx context.Context, entityID string) error
	Unbookmark(ctx context.Context, entityID string) error
}

// LikeService records likes. There is no dedicated endpoint; implementations
// may keep the state locally.
type LikeService interface {
	Like(ctx context.Context, entityID string) error
	Unlike(ctx context.Context, entityID string) error
}

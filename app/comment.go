package app

import (
	"context"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// CommentService reads and writes comments on a prediction.
type CommentService interface {
	// FetchComments returns a flat page of comments; replies carry ParentID.
	FetchComments(ctx context.Context, entityID string, page, limit int) ([]domain.Comment, error)

	// PostComment publishes a comment. parentID is empty for a root comment.
	PostComment(ctx context.Context, entityID, content, parentID string) (domain.Comment, error)
}

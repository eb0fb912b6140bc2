package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength is the server-side comment limit in characters.
const MaxCommentLength = 500

// Comment is a single comment on a prediction. A comment with a ParentID is
// a reply; threads are two levels deep.
type Comment struct {
	ID        string
	EntityID  string
	Author    Author
	Content   string
	ParentID  string
	CreatedAt time.Time
	Local     bool // Optimistic comment not yet confirmed by the server
}

// IsReply reports whether the comment is addressed to another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}

// Thread is a root comment and the replies addressed to it.
type Thread struct {
	Root    Comment
	Replies []Comment
}

// ValidateComment trims the content and checks it before any network call.
func ValidateComment(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyComment
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return content, nil
}

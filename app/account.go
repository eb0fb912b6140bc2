package app

import "context"

// User is the authenticated user's summary.
type User struct {
	ID          string
	Username    string
	DisplayName string
}

// AccountService provides information about the authenticated user.
type AccountService interface {
	// CurrentUser returns the authenticated user.
	CurrentUser(ctx context.Context) (User, error)
}

// Session is the read-only authentication context handed to views at the
// composition root. Views never mutate it.
type Session struct {
	User      User
	Interests []string
}

// IsSelf reports whether userID belongs to the authenticated user.
func (s Session) IsSelf(userID string) bool {
	return s.User.ID != "" && s.User.ID == userID
}

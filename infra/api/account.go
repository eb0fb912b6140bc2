package api

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/terminalwager/app"
)

// accountService implements app.AccountService.
type accountService struct {
	client *Client
}

func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

func (s *accountService) CurrentUser(ctx context.Context) (app.User, error) {
	data, err := s.client.Get(ctx, "/users/me")
	if err != nil {
		return app.User{}, fmt.Errorf("fetching current user: %w", err)
	}
	var raw rawAuthor
	decodeRecord(decodeObject(data, "data", "user"), &raw)
	if raw.ID == "" {
		return app.User{}, fmt.Errorf("fetching current user: response has no id")
	}
	display := raw.DisplayName
	if display == "" {
		display = raw.Username
	}
	return app.User{
		ID:          sanitizeForTerminal(raw.ID.String()),
		Username:    sanitizeForTerminal(raw.Username),
		DisplayName: sanitizeForTerminal(display),
	}, nil
}

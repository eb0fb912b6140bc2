package auth

import (
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies a bearer token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk. The file is
// re-read on every call so a token refreshed by another process is picked up.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}

// StaticToken is a TokenProvider for a token given directly (env or flag).
type StaticToken string

func (s StaticToken) AccessToken() (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return token, nil
}

// FromConfig picks the direct token when set, otherwise the token file.
func FromConfig(token, tokenPath string) TokenProvider {
	if strings.TrimSpace(token) != "" {
		return StaticToken(token)
	}
	return NewFileTokenProvider(tokenPath)
}

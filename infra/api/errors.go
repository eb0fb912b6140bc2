package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// APIError describes a failed API call. It unwraps to a domain sentinel
// (ErrConflict, ErrRejected, ErrUnauthorized, ErrNotFound) when one applies.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Reason     string // Server discriminator, e.g. "ALREADY_FOLLOWING"
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Reason != "" {
		msg = e.Reason + ": " + msg
	}
	return fmt.Sprintf("API %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// envelope is the common wrapper of mutating responses. The error member is
// either an object or a bare string depending on the endpoint.
type envelope struct {
	Success *bool           `json:"success"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type errorBody struct {
	Reason  string `json:"reason"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func checkResponse(method, path string, status int, data []byte) error {
	env, _ := parseEnvelope(data)
	if status < 200 || status >= 300 {
		e := &APIError{Method: method, Path: path, StatusCode: status}
		e.Reason, e.Message = env.details()
		if e.Message == "" && env.Message == "" && len(bytes.TrimSpace(data)) > 0 && !json.Valid(data) {
			e.Message = strings.TrimSpace(string(data))
		}
		switch status {
		case http.StatusConflict:
			e.kind = domain.ErrConflict
		case http.StatusUnauthorized:
			e.kind = domain.ErrUnauthorized
		case http.StatusNotFound:
			e.kind = domain.ErrNotFound
		}
		return e
	}
	if env.Success != nil && !*env.Success {
		e := &APIError{Method: method, Path: path, StatusCode: status, kind: domain.ErrRejected}
		e.Reason, e.Message = env.details()
		return e
	}
	return nil
}

func parseEnvelope(data []byte) (envelope, bool) {
	var env envelope
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}, false
	}
	return env, true
}

func (env envelope) details() (reason, message string) {
	message = env.Message
	if len(env.Error) == 0 || string(env.Error) == "null" {
		return "", message
	}
	var s string
	if err := json.Unmarshal(env.Error, &s); err == nil {
		if message == "" {
			message = s
		}
		return "", message
	}
	var body errorBody
	if err := json.Unmarshal(env.Error, &body); err == nil {
		reason = body.Reason
		if reason == "" {
			reason = body.Code
		}
		if body.Message != "" {
			message = body.Message
		}
	}
	return reason, message
}

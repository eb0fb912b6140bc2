package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// rawAuthor is the user summary as embedded in predictions and comments.
type rawAuthor struct {
	ID          flexString      `json:"id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Name        string          `json:"name"`
	AvatarURL   string          `json:"avatar_url"`
	Avatar      string          `json:"avatar"`
	Title       string          `json:"title"`
	Verified    flexBool        `json:"verified"`
	IsVerified  flexBool        `json:"is_verified"`
	Badges      json.RawMessage `json:"badges"`
	IsFollowing flexBool        `json:"is_following"`
}

// rawPrediction is one prediction record as returned by the list endpoints.
// The author may appear under creator, user or author.
type rawPrediction struct {
	ID          flexString      `json:"id"`
	Creator     json.RawMessage `json:"creator"`
	User        json.RawMessage `json:"user"`
	Author      json.RawMessage `json:"author"`
	CreatorID   flexString      `json:"creator_id"`
	CreatedAt   flexString      `json:"created_at"`
	Deadline    flexString      `json:"deadline"`
	ExpiresAt   flexString      `json:"expires_at"`
	Question    string          `json:"question"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     string          `json:"content"`

	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
	ImageURL  string `json:"image_url"`
	VideoURL  string `json:"video_url"`

	TotalPotXP flexNumber `json:"total_pot_xp"`
	YesPoolXP  flexNumber `json:"yes_pool_xp"`
	NoPoolXP   flexNumber `json:"no_pool_xp"`
	TotalPotXC flexNumber `json:"total_pot_xc"`
	YesPoolXC  flexNumber `json:"yes_pool_xc"`
	NoPoolXC   flexNumber `json:"no_pool_xc"`

	CommentsCount flexNumber `json:"comments_count"`
	RepostsCount  flexNumber `json:"reposts_count"`
	LikesCount    flexNumber `json:"likes_count"`

	IsLiked      flexBool `json:"is_liked"`
	IsReposted   flexBool `json:"is_reposted"`
	IsBookmarked flexBool `json:"is_bookmarked"`

	Category string      `json:"category"`
	Status   string      `json:"status"`
	Outcome  flexOutcome `json:"outcome"`
}

// rawComment is one comment record. parent_id is null, empty or "0" for roots.
type rawComment struct {
	ID           flexString      `json:"id"`
	PostID       flexString      `json:"post_id"`
	PredictionID flexString      `json:"prediction_id"`
	User         json.RawMessage `json:"user"`
	Author       json.RawMessage `json:"author"`
	Content      string          `json:"content"`
	ParentID     flexString      `json:"parent_id"`
	CreatedAt    flexString      `json:"created_at"`
}

// MapPrediction normalizes one raw record. It never fails: every missing or
// malformed field degrades to its default.
func MapPrediction(raw rawPrediction) domain.Entity {
	author := mapAuthor(firstPresent(raw.Creator, raw.User, raw.Author))
	if author.ID == "" {
		author.ID = sanitizeForTerminal(raw.CreatorID.String())
	}

	deadline := raw.Deadline
	if deadline == "" {
		deadline = raw.ExpiresAt
	}
	question := raw.Question
	if question == "" {
		question = raw.Title
	}
	description := raw.Description
	if description == "" {
		description = raw.Content
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	return domain.Entity{
		ID:          sanitizeForTerminal(raw.ID.String()),
		Author:      author,
		CreatedAt:   parseTime(raw.CreatedAt.String()),
		Deadline:    parseTime(deadline.String()),
		Question:    sanitizeForTerminal(question),
		Description: sanitizeForTerminal(description),
		Media:       mapMedia(raw),
		PoolXP:      domain.NewPool(raw.YesPoolXP.Float(), raw.NoPoolXP.Float(), raw.TotalPotXP.Float()),
		PoolXC:      domain.NewPool(raw.YesPoolXC.Float(), raw.NoPoolXC.Float(), raw.TotalPotXC.Float()),
		Counters: domain.Counters{
			Comments: raw.CommentsCount.Int(),
			Reposts:  raw.RepostsCount.Int(),
			Likes:    raw.LikesCount.Int(),
		},
		IsLiked:      bool(raw.IsLiked),
		IsReposted:   bool(raw.IsReposted),
		IsBookmarked: bool(raw.IsBookmarked),
		Category:     sanitizeForTerminal(category),
		Resolution: domain.Resolution{
			State:   parseResolution(raw.Status),
			Outcome: raw.Outcome.ptr(),
		},
	}
}

// MapComment normalizes one raw comment with the same author fallbacks as
// predictions.
func MapComment(raw rawComment) domain.Comment {
	entityID := raw.PostID
	if entityID == "" {
		entityID = raw.PredictionID
	}
	parent := strings.TrimSpace(raw.ParentID.String())
	if parent == "0" {
		parent = ""
	}
	return domain.Comment{
		ID:        sanitizeForTerminal(raw.ID.String()),
		EntityID:  sanitizeForTerminal(entityID.String()),
		Author:    mapAuthor(firstPresent(raw.User, raw.Author)),
		Content:   sanitizeForTerminal(raw.Content),
		ParentID:  sanitizeForTerminal(parent),
		CreatedAt: parseTime(raw.CreatedAt.String()),
	}
}

func mapAuthor(data json.RawMessage) domain.Author {
	var raw rawAuthor
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
	case trimmed[0] == '{':
		_ = json.Unmarshal(trimmed, &raw)
	default:
		// Some endpoints embed only the author's ID.
		_ = json.Unmarshal(trimmed, &raw.ID)
	}

	username := strings.TrimSpace(raw.Username)
	if username == "" {
		username = "unknown"
	}
	display := strings.TrimSpace(raw.DisplayName)
	if display == "" {
		display = strings.TrimSpace(raw.Name)
	}
	if display == "" {
		display = strings.TrimSpace(raw.Username)
	}
	if display == "" {
		display = "Unknown"
	}
	avatar := raw.AvatarURL
	if avatar == "" {
		avatar = raw.Avatar
	}

	return domain.Author{
		ID:          sanitizeForTerminal(raw.ID.String()),
		Username:    sanitizeForTerminal(username),
		DisplayName: sanitizeForTerminal(display),
		AvatarURL:   sanitizeForTerminal(avatar),
		Title:       sanitizeForTerminal(raw.Title),
		Verified:    bool(raw.Verified || raw.IsVerified),
		Badges:      mapBadges(raw.Badges),
		Following:   bool(raw.IsFollowing),
	}
}

// mapBadges accepts a list of names or a list of {name} objects.
func mapBadges(data json.RawMessage) []string {
	if len(data) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	var badges []string
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			var obj struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(item, &obj); err != nil {
				continue
			}
			name = obj.Name
		}
		if name = sanitizeForTerminal(strings.TrimSpace(name)); name != "" {
			badges = append(badges, name)
		}
	}
	return badges
}

func mapMedia(raw rawPrediction) domain.Media {
	url := strings.TrimSpace(raw.MediaURL)
	kind := domain.MediaType(strings.ToLower(strings.TrimSpace(raw.MediaType)))
	if url == "" {
		switch {
		case raw.VideoURL != "":
			url, kind = strings.TrimSpace(raw.VideoURL), domain.MediaVideo
		case raw.ImageURL != "":
			url, kind = strings.TrimSpace(raw.ImageURL), domain.MediaPhoto
		}
	}
	if url == "" {
		return domain.Media{Type: domain.MediaText}
	}
	switch kind {
	case domain.MediaPhoto, domain.MediaVideo:
	case "image":
		kind = domain.MediaPhoto
	default:
		kind = mediaTypeFromURL(url)
	}
	return domain.Media{Type: kind, URL: sanitizeForTerminal(url)}
}

func mediaTypeFromURL(u string) domain.MediaType {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch strings.ToLower(path.Ext(u)) {
	case ".mp4", ".mov", ".webm", ".m3u8":
		return domain.MediaVideo
	}
	return domain.MediaPhoto
}

func parseResolution(status string) domain.ResolutionState {
	switch s := domain.ResolutionState(strings.ToLower(strings.TrimSpace(status))); s {
	case domain.ResolutionSubmitted, domain.ResolutionResolved:
		return s
	}
	return domain.ResolutionPending
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func firstPresent(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		if t := bytes.TrimSpace(c); len(t) > 0 && string(t) != "null" {
			return t
		}
	}
	return nil
}

// decodeList splits a list response into raw records. Both a bare array and
// an object envelope carrying the array under one of keys are accepted.
func decodeList(data []byte, keys ...string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var records []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parsing list: %w", err)
		}
		return records, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("parsing list: %w", err)
	}
	for _, key := range keys {
		inner, ok := obj[key]
		if !ok || string(bytes.TrimSpace(inner)) == "null" {
			continue
		}
		return decodeList(inner, keys...)
	}
	return nil, nil
}

// decodeObject unwraps a single record that may sit under one of keys.
func decodeObject(data []byte, keys ...string) json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return trimmed
	}
	for _, key := range keys {
		if inner, ok := obj[key]; ok && bytes.HasPrefix(bytes.TrimSpace(inner), []byte("{")) {
			return inner
		}
	}
	return trimmed
}

// decodeRecord fills v from one record. Type mismatches leave the affected
// field at its zero value; the rest of the record still decodes.
func decodeRecord(data json.RawMessage, v any) {
	_ = json.Unmarshal(data, v)
}

func mapPredictions(records []json.RawMessage, selfID string) []domain.Entity {
	entities := make([]domain.Entity, 0, len(records))
	for _, rec := range records {
		var raw rawPrediction
		decodeRecord(rec, &raw)
		e := MapPrediction(raw)
		e.IsOwn = selfID != "" && e.Author.ID == selfID
		entities = append(entities, e)
	}
	return entities
}

func mapComments(records []json.RawMessage) []domain.Comment {
	comments := make([]domain.Comment, 0, len(records))
	for _, rec := range records {
		var raw rawComment
		decodeRecord(rec, &raw)
		comments = append(comments, MapComment(raw))
	}
	return comments
}

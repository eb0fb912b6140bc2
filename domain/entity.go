package domain

import "time"

// DefaultCategory is used when a prediction carries no category tag.
const DefaultCategory = "general"

type MediaType string

const (
	MediaText  MediaType = "text"
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// Media is the optional attachment of a prediction.
type Media struct {
	Type MediaType
	URL  string
}

// HasAttachment reports whether the media points at a photo or video.
func (m Media) HasAttachment() bool {
	return m.Type != MediaText && m.URL != ""
}

// Author is the summary of a user shown on cards and comments.
type Author struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	Title       string
	Verified    bool
	Badges      []string
	Following   bool // True if the authenticated user follows this author
}

type ResolutionState string

const (
	ResolutionPending   ResolutionState = "pending"
	ResolutionSubmitted ResolutionState = "submitted"
	ResolutionResolved  ResolutionState = "resolved"
)

// Resolution tracks whether a prediction has been settled.
// Outcome is nil until the prediction resolves.
type Resolution struct {
	State   ResolutionState
	Outcome *bool
}

type Counters struct {
	Comments int
	Reposts  int
	Likes    int
}

// Entity is a normalized prediction/post as displayed in the feed.
type Entity struct {
	ID           string
	Author       Author
	CreatedAt    time.Time
	Deadline     time.Time
	Question     string
	Description  string
	Media        Media
	PoolXP       Pool
	PoolXC       Pool
	Counters     Counters
	IsLiked      bool
	IsReposted   bool
	IsBookmarked bool
	Category     string
	Resolution   Resolution
	IsOwn        bool // True if the authenticated user created it
}

// Expired reports whether the deadline has passed while the prediction is
// still waiting for a resolution.
func (e Entity) Expired(now time.Time) bool {
	if e.Deadline.IsZero() {
		return false
	}
	return e.Resolution.State == ResolutionPending && !now.Before(e.Deadline)
}

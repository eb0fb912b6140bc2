// Package interaction implements optimistic toggle state for social actions
// (like, repost, bookmark, follow) with server reconciliation.
//
// A toggle moves the displayed value immediately and marks the state
// Pending. The API result then resolves it:
//
//	success          -> intended value
//	conflict (409)   -> intended value, silently (the server already agrees)
//	other failure    -> pre-toggle value and counter, with a user notice
//
// Follow is the exception on conflict: the state stays Pending and the caller
// re-fetches the authoritative status, then calls Settle.
package interaction

import (
	"errors"

	"github.com/CrestNiraj12/terminalwager/domain"
)

type Kind string

const (
	Like     Kind = "like"
	Repost   Kind = "repost"
	Bookmark Kind = "bookmark"
	Follow   Kind = "follow"
)

// Verb returns the user-facing action name for the given direction.
func (k Kind) Verb(on bool) string {
	if on {
		return string(k)
	}
	return "un" + string(k)
}

type Phase int

const (
	Inactive Phase = iota
	Active
	Pending
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Pending:
		return "pending"
	default:
		return "inactive"
	}
}

type Outcome int

const (
	Success Outcome = iota
	Conflict
	Failure
)

// Effect tells the caller what to do after resolving a toggle.
type Effect int

const (
	EffectNone    Effect = iota
	EffectNotify         // show one failure notice
	EffectRefetch        // fetch the authoritative state, then Settle
)

// ErrInFlight is returned when a toggle is requested while the previous one
// of the same kind on the same entity is still unresolved.
var ErrInFlight = errors.New("interaction already in flight")

// Classify maps an API error to a toggle outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, domain.ErrConflict):
		return Conflict
	default:
		return Failure
	}
}

// State is the toggle state of one (entity, kind) pair. The zero value is an
// inactive like with no counter.
type State struct {
	kind    Kind
	active  bool
	count   int
	pending bool

	prevActive bool
	prevCount  int
}

// New returns a settled state as reported by the server.
func New(kind Kind, active bool, count int) State {
	return State{kind: kind, active: active, count: max(count, 0)}
}

func (s State) Kind() Kind   { return s.kind }
func (s State) Active() bool { return s.active }
func (s State) Count() int   { return s.count }

// Phase returns Pending while a request is unresolved, otherwise the
// settled value.
func (s State) Phase() Phase {
	switch {
	case s.pending:
		return Pending
	case s.active:
		return Active
	default:
		return Inactive
	}
}

// Intended returns the value a pending toggle is moving towards.
func (s State) Intended() (bool, bool) {
	if !s.pending {
		return s.active, false
	}
	return s.active, true
}

// Toggle flips the displayed value, adjusts the counter by one and marks the
// state pending.
func (s State) Toggle() (State, error) {
	if s.pending {
		return s, ErrInFlight
	}
	s.prevActive = s.active
	s.prevCount = s.count
	s.active = !s.active
	if s.active {
		s.count++
	} else if s.count > 0 {
		s.count--
	}
	s.pending = true
	return s, nil
}

// Resolve applies the API outcome to a pending toggle.
func (s State) Resolve(o Outcome) (State, Effect) {
	if !s.pending {
		return s, EffectNone
	}
	switch o {
	case Success:
		s.pending = false
		return s, EffectNone
	case Conflict:
		if s.kind == Follow {
			return s, EffectRefetch
		}
		s.pending = false
		return s, EffectNone
	default:
		s.active = s.prevActive
		s.count = s.prevCount
		s.pending = false
		return s, EffectNotify
	}
}

// Settle applies the server's authoritative value. The counter is derived
// from the pre-toggle baseline so a disagreeing server does not drift it.
func (s State) Settle(serverActive bool) State {
	base, baseActive := s.count, s.active
	if s.pending {
		base, baseActive = s.prevCount, s.prevActive
	}
	count := base
	switch {
	case serverActive && !baseActive:
		count++
	case !serverActive && baseActive && count > 0:
		count--
	}
	s.active = serverActive
	s.count = count
	s.pending = false
	return s
}

package interaction

// Key identifies one toggle. For Follow the ID is the author's user ID,
// otherwise it is the prediction ID.
type Key struct {
	ID   string
	Kind Kind
}

// Tracker owns the toggle states of every rendered card. It is driven from
// the UI update loop only and is not safe for concurrent use.
type Tracker struct {
	states map[Key]State
}

func NewTracker() *Tracker {
	return &Tracker{states: make(map[Key]State)}
}

// Seed records the server's view from a fetch. A pending state is kept: the
// fetch may have raced the request.
func (t *Tracker) Seed(key Key, active bool, count int) {
	if cur, ok := t.states[key]; ok && cur.pending {
		return
	}
	t.states[key] = New(key.Kind, active, count)
}

// Get returns the state for key, if any.
func (t *Tracker) Get(key Key) (State, bool) {
	s, ok := t.states[key]
	return s, ok
}

// Begin toggles the state optimistically. Unknown keys start inactive.
func (t *Tracker) Begin(key Key) (State, error) {
	cur, ok := t.states[key]
	if !ok {
		cur = New(key.Kind, false, 0)
	}
	next, err := cur.Toggle()
	if err != nil {
		return cur, err
	}
	t.states[key] = next
	return next, nil
}

// Finish resolves a pending toggle with the API error (nil on success).
func (t *Tracker) Finish(key Key, err error) (State, Effect) {
	cur, ok := t.states[key]
	if !ok {
		return State{kind: key.Kind}, EffectNone
	}
	next, eff := cur.Resolve(Classify(err))
	t.states[key] = next
	return next, eff
}

// Settle applies an authoritative value fetched after a conflict.
func (t *Tracker) Settle(key Key, serverActive bool) State {
	cur, ok := t.states[key]
	if !ok {
		cur = New(key.Kind, false, 0)
	}
	next := cur.Settle(serverActive)
	t.states[key] = next
	return next
}

// Pending reports whether a request for key is outstanding.
func (t *Tracker) Pending(key Key) bool {
	s, ok := t.states[key]
	return ok && s.pending
}

// Reset drops every settled state. Pending states survive so their results
// still have somewhere to land.
func (t *Tracker) Reset() {
	for k, s := range t.states {
		if !s.pending {
			delete(t.states, k)
		}
	}
}

// Len returns the number of tracked keys.
func (t *Tracker) Len() int {
	return len(t.states)
}

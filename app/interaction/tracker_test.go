package interaction

import (
	"errors"
	"testing"

	"github.com/CrestNiraj12/terminalwager/domain"
)

func TestTracker_BeginFinishLifecycle(t *testing.T) {
	tr := NewTracker()
	key := Key{ID: "p1", Kind: Like}
	tr.Seed(key, false, 5)

	s, err := tr.Begin(key)
	if err != nil || !s.Active() || s.Count() != 6 {
		t.Fatalf("unexpected begin: %+v err=%v", s, err)
	}
	if !tr.Pending(key) {
		t.Fatalf("expected key pending after begin")
	}
	if _, err := tr.Begin(key); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second begin should be rejected, got %v", err)
	}

	s, eff := tr.Finish(key, errors.New("boom"))
	if eff != EffectNotify || s.Active() || s.Count() != 5 {
		t.Fatalf("failure must roll back: %+v eff=%v", s, eff)
	}
	if tr.Pending(key) {
		t.Fatalf("key must not stay pending after finish")
	}
}

func TestTracker_SeedDoesNotClobberPending(t *testing.T) {
	tr := NewTracker()
	key := Key{ID: "p1", Kind: Repost}
	tr.Seed(key, false, 0)
	_, _ = tr.Begin(key)

	tr.Seed(key, false, 0)
	s, _ := tr.Get(key)
	if !s.Active() || s.Phase() != Pending {
		t.Fatalf("refetch must not clobber pending toggle: %+v", s)
	}

	tr.Finish(key, nil)
	tr.Seed(key, false, 9)
	s, _ = tr.Get(key)
	if s.Active() || s.Count() != 9 {
		t.Fatalf("settled state should take server values: %+v", s)
	}
}

func TestTracker_IndependentKinds(t *testing.T) {
	tr := NewTracker()
	like := Key{ID: "p1", Kind: Like}
	bookmark := Key{ID: "p1", Kind: Bookmark}
	_, _ = tr.Begin(like)
	if _, err := tr.Begin(bookmark); err != nil {
		t.Fatalf("different kinds on the same entity must not block each other: %v", err)
	}
	tr.Finish(bookmark, nil)
	tr.Finish(like, domain.ErrConflict)
	for _, k := range []Key{like, bookmark} {
		s, _ := tr.Get(k)
		if s.Phase() != Active {
			t.Fatalf("%v should be active, got %v", k, s.Phase())
		}
	}
}

func TestTracker_FollowConflictSettle(t *testing.T) {
	tr := NewTracker()
	key := Key{ID: "u1", Kind: Follow}
	_, _ = tr.Begin(key)
	_, eff := tr.Finish(key, domain.ErrConflict)
	if eff != EffectRefetch || !tr.Pending(key) {
		t.Fatalf("follow conflict should remain pending with refetch effect")
	}
	s := tr.Settle(key, true)
	if s.Phase() != Active || tr.Pending(key) {
		t.Fatalf("settle should finish the follow: %+v", s)
	}
}

func TestTracker_ResetKeepsPending(t *testing.T) {
	tr := NewTracker()
	settled := Key{ID: "a", Kind: Like}
	inflight := Key{ID: "b", Kind: Like}
	tr.Seed(settled, true, 1)
	_, _ = tr.Begin(inflight)
	tr.Reset()
	if _, ok := tr.Get(settled); ok {
		t.Fatalf("settled state should be dropped on reset")
	}
	if !tr.Pending(inflight) || tr.Len() != 1 {
		t.Fatalf("pending state must survive reset")
	}
}

func TestTracker_FinishUnknownKeyIsNoop(t *testing.T) {
	tr := NewTracker()
	_, eff := tr.Finish(Key{ID: "x", Kind: Like}, errors.New("late"))
	if eff != EffectNone || tr.Len() != 0 {
		t.Fatalf("finishing unknown key must not create state")
	}
}

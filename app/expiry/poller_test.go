package expiry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CrestNiraj12/terminalwager/domain"
)

type stubExpiry struct {
	calls atomic.Int32
	err   error
	items []domain.Entity
}

func (s *stubExpiry) ExpiredPending(context.Context) ([]domain.Entity, error) {
	s.calls.Add(1)
	return s.items, s.err
}

func TestPoller_PollsImmediatelyAndOnInterval(t *testing.T) {
	svc := &stubExpiry{items: []domain.Entity{{ID: "p1"}}}
	results := make(chan int, 16)
	p := NewPoller(svc, 10*time.Millisecond, nil, func(es []domain.Entity) {
		select {
		case results <- len(es):
		default:
		}
	})

	p.Start(context.Background())
	defer p.Stop()

	for i := range 2 {
		select {
		case n := <-results:
			if n != 1 {
				t.Fatalf("expected one expired prediction, got %d", n)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for poll %d", i)
		}
	}
}

func TestPoller_SwallowsFailures(t *testing.T) {
	svc := &stubExpiry{err: errors.New("502 bad gateway")}
	called := make(chan struct{}, 1)
	p := NewPoller(svc, 5*time.Millisecond, nil, func([]domain.Entity) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	p.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for svc.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	p.Stop()

	if svc.calls.Load() < 2 {
		t.Fatalf("poller should keep polling after failures")
	}
	select {
	case <-called:
		t.Fatalf("result callback must not run on failure")
	default:
	}
}

func TestPoller_StartIsIdempotentAndStopEndsLoop(t *testing.T) {
	svc := &stubExpiry{}
	p := NewPoller(svc, time.Hour, nil, nil)
	p.Start(context.Background())
	p.Start(context.Background())
	if !p.Running() {
		t.Fatalf("expected running poller")
	}
	p.Stop()
	p.Stop()
	if p.Running() {
		t.Fatalf("expected stopped poller")
	}
	before := svc.calls.Load()
	time.Sleep(10 * time.Millisecond)
	if svc.calls.Load() != before {
		t.Fatalf("no polls expected after stop")
	}
}

func TestPoller_ParentCancelStopsLoop(t *testing.T) {
	svc := &stubExpiry{}
	p := NewPoller(svc, 5*time.Millisecond, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()
	p.Stop()
	if p.Running() {
		t.Fatalf("poller should not run after session ends")
	}
}

func TestPoller_RestartsAfterParentCancel(t *testing.T) {
	svc := &stubExpiry{}
	p := NewPoller(svc, time.Hour, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for p.Running() {
		if time.Now().After(deadline) {
			t.Fatalf("poller still running after parent cancel")
		}
		time.Sleep(time.Millisecond)
	}

	before := svc.calls.Load()
	p.Start(context.Background())
	defer p.Stop()
	if !p.Running() {
		t.Fatalf("expected a new session to start the poller")
	}
	for svc.calls.Load() == before {
		if time.Now().After(deadline) {
			t.Fatalf("restarted poller never polled")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(&stubExpiry{}, 0, nil, nil)
	if p.interval != DefaultInterval {
		t.Fatalf("expected default interval, got %v", p.interval)
	}
}

// Package expiry polls for predictions whose deadline passed without a
// resolution. The poll is best effort: failures are logged and dropped.
package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/CrestNiraj12/terminalwager/app"
	"github.com/CrestNiraj12/terminalwager/domain"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 5 * time.Minute

// Poller runs one check immediately on Start and then every interval until
// Stop or the parent context ends. Its lifetime is the authenticated session.
type Poller struct {
	svc      app.ExpiryService
	interval time.Duration
	logger   *slog.Logger
	onResult func([]domain.Entity)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(svc app.ExpiryService, interval time.Duration, logger *slog.Logger, onResult func([]domain.Entity)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Poller{
		svc:      svc,
		interval: interval,
		logger:   logger.With("component", "expiry"),
		onResult: onResult,
	}
}

// Start launches the poll loop. Calling Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.logger.Debug("poller already running")
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.loop(ctx, done)
	p.logger.Debug("poller started", "interval", p.interval)
}

// Stop cancels the loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.logger.Debug("poller stopped")
}

// Running reports whether the loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer p.release(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// release forgets the run that owns done, so a parent cancel leaves the
// poller restartable. A newer run started meanwhile is left alone.
func (p *Poller) release(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == done {
		p.cancel()
		p.cancel, p.done = nil, nil
	}
}

func (p *Poller) poll(ctx context.Context) {
	expired, err := p.svc.ExpiredPending(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Debug("expired predictions check failed", "err", err)
		}
		return
	}
	if ctx.Err() != nil {
		return
	}
	if p.onResult != nil {
		p.onResult(expired)
	}
}

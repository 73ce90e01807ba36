// Package poller drives the periodic refresh of dashboard aggregates
// and list views. It is an explicit start/stop/tick scheduler: nothing
// arms it automatically at login, and hiding the consuming surface
// pauses ticks without tearing the loop down.
package poller

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval matches the deployed refresh cadence.
const DefaultInterval = 5 * time.Minute

// RefreshFunc re-fetches whatever the consuming surface shows. Errors
// are the refresh function's own concern; a failed refresh just waits
// for the next tick.
type RefreshFunc func(ctx context.Context)

type Poller struct {
	interval time.Duration
	refresh  RefreshFunc

	mu      sync.Mutex
	running bool
	paused  bool
	stop    chan struct{}
	done    chan struct{}
}

func New(interval time.Duration, refresh RefreshFunc) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval, refresh: refresh}
}

// Start arms the loop and performs an immediate refresh. Calling Start
// on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.paused = false
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	stop, done := p.stop, p.done
	p.mu.Unlock()

	p.Tick(ctx)

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Tick(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop tears the loop down and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stop)
	done := p.done
	p.mu.Unlock()
	<-done
}

// Pause suspends refreshes while the surface is hidden. The loop keeps
// ticking; ticks become no-ops until Resume.
func (p *Poller) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

func (p *Poller) Resume() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
}

// Tick refreshes immediately unless paused. It is also the manual
// "refresh now" entry point.
func (p *Poller) Tick(ctx context.Context) {
	p.mu.Lock()
	paused := p.paused
	p.mu.Unlock()
	if paused {
		return
	}
	p.refresh(ctx)
}

// Running reports whether the loop is armed.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

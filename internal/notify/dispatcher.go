package notify

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

type event struct {
	ctx     context.Context
	message string
}

// Dispatcher hands notifications to a background goroutine so callers
// never wait on slow sinks. It implements workers.Worker.
//
// Every message is delivered exactly once: when the dispatcher is not
// running, has been stopped, or its queue is full, the message is delivered
// inline on the caller's goroutine.
type Dispatcher struct {
	next   Notifier
	logger *logger.Logger

	mu      sync.RWMutex
	queue   chan event
	running bool
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher wraps next with a queue of the given capacity.
func NewDispatcher(next Notifier, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize < 0 {
		queueSize = 0
	}
	return &Dispatcher{
		next:   next,
		logger: log,
		queue:  make(chan event, queueSize),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, message string) {
	d.mu.RLock()
	if d.running && !d.stopped {
		select {
		case d.queue <- event{ctx: context.WithoutCancel(ctx), message: message}:
			d.mu.RUnlock()
			return
		default:
			d.logger.Debug().Str("func", "*Dispatcher.Notify").Msg("notification queue full, delivering inline")
		}
	}
	d.mu.RUnlock()

	d.next.Notify(ctx, message)
}

// Run starts the delivery goroutine. Calls after the first, or after Stop,
// are ignored.
func (d *Dispatcher) Run() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running || d.stopped {
		return
	}
	d.running = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for ev := range d.queue {
			d.next.Notify(ev.ctx, ev.message)
		}
	}()
}

// Stop delivers everything still queued and waits for the goroutine to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

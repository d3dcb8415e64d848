package ticker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is how often the processing indicator flips.
const DefaultInterval = 3 * time.Second

// StatusTicker flips a boolean "processing" indicator on a fixed interval.
// The flag is purely cosmetic and does not track any real work.
type StatusTicker struct {
	interval time.Duration
	clock    clockwork.Clock
	onToggle func(bool)

	processing atomic.Bool
	toggles    atomic.Int64

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a StatusTicker.
type Option func(*StatusTicker)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(t *StatusTicker) { t.interval = d }
}

// WithClock sets the clock driving the ticker.
func WithClock(c clockwork.Clock) Option {
	return func(t *StatusTicker) { t.clock = c }
}

// WithOnToggle registers a hook called with the new value after every flip.
func WithOnToggle(fn func(bool)) Option {
	return func(t *StatusTicker) { t.onToggle = fn }
}

// New creates a stopped ticker.
func New(opts ...Option) *StatusTicker {
	t := &StatusTicker{
		interval: DefaultInterval,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the ticker. It stops on its own when ctx is cancelled.
// Calling Start on a running ticker does nothing.
func (t *StatusTicker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	tk := t.clock.NewTicker(t.interval)
	go t.loop(ctx, tk, t.stop, t.done)
}

func (t *StatusTicker) loop(ctx context.Context, tk clockwork.Ticker, stop, done chan struct{}) {
	defer close(done)
	defer tk.Stop()

	for {
		select {
		case <-tk.Chan():
			// a stop or cancellation racing with a tick wins
			select {
			case <-stop:
				return
			case <-ctx.Done():
				t.expire()
				return
			default:
			}
			v := !t.processing.Load()
			t.processing.Store(v)
			t.toggles.Add(1)
			if t.onToggle != nil {
				t.onToggle(v)
			}
		case <-stop:
			return
		case <-ctx.Done():
			t.expire()
			return
		}
	}
}

// expire marks the ticker stopped after its context ended.
func (t *StatusTicker) expire() {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

// Stop cancels the ticker and waits for its goroutine to exit.
// It is safe to call more than once.
func (t *StatusTicker) Stop() {
	t.mu.Lock()
	if !t.running {
		done := t.done
		t.mu.Unlock()
		if done != nil {
			<-done
		}
		return
	}
	t.running = false
	close(t.stop)
	done := t.done
	t.mu.Unlock()

	<-done
}

// Processing returns the current indicator value.
func (t *StatusTicker) Processing() bool {
	return t.processing.Load()
}

// Toggles returns how many times the indicator has flipped.
func (t *StatusTicker) Toggles() int64 {
	return t.toggles.Load()
}

// Running reports whether the ticker goroutine is active.
func (t *StatusTicker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

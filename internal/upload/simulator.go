package upload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"docdash/internal/model"
)

// DefaultDelay is the artificial processing time of one upload.
const DefaultDelay = 2 * time.Second

// ErrClosed is the result of a task aborted by closing its simulator.
var ErrClosed = errors.New("upload simulator closed")

// State is the simulator's position in the upload cycle.
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateUploading
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateUploading:
		return "uploading"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = StateIdle
	case "file_selected":
		*s = StateFileSelected
	case "uploading":
		*s = StateUploading
	case "success":
		*s = StateSuccess
	default:
		return fmt.Errorf("upload: unknown state %q", b)
	}
	return nil
}

// CompletionFunc receives the record produced by a finished upload.
type CompletionFunc func(model.DocumentRecord)

// Snapshot is a point-in-time copy of the simulator's state.
type Snapshot struct {
	State   State                 `json:"state"`
	File    *FileRef              `json:"file,omitempty"`
	Summary string                `json:"summary"`
	Success bool                  `json:"success"`
	Last    *model.DocumentRecord `json:"last,omitempty"`
	Closed  bool                  `json:"closed"`
}

// Simulator runs the select → upload → success cycle for one upload widget.
// All methods are safe for concurrent use.
type Simulator struct {
	gen        *Generator
	clock      clockwork.Clock
	delay      time.Duration
	onComplete CompletionFunc

	mu      sync.Mutex
	state   State
	file    *FileRef
	summary string
	success bool
	last    *model.DocumentRecord
	task    *Task

	closed    chan struct{}
	closeOnce sync.Once
	inflight  sync.WaitGroup
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) { s.delay = d }
}

// WithClock sets the clock driving the upload delay.
func WithClock(c clockwork.Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithGenerator sets the record generator.
func WithGenerator(g *Generator) Option {
	return func(s *Simulator) { s.gen = g }
}

// NewSimulator creates an idle simulator. onComplete may be nil.
func NewSimulator(onComplete CompletionFunc, opts ...Option) *Simulator {
	s := &Simulator{
		clock:      clockwork.NewRealClock(),
		delay:      DefaultDelay,
		onComplete: onComplete,
		closed:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewGenerator(WithGeneratorClock(s.clock))
	}
	return s
}

// SelectFile records the user's file choice and clears the success flag.
// It is ignored while an upload is in flight or after Close.
func (s *Simulator) SelectFile(f FileRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed() || s.state == StateUploading {
		return false
	}
	s.file = &f
	s.state = StateFileSelected
	s.success = false
	return true
}

// SetSummary stores the optional summary text.
// It is ignored while an upload is in flight or after Close.
func (s *Simulator) SetSummary(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed() || s.state == StateUploading {
		return false
	}
	s.summary = text
	return true
}

// CanStart reports whether Start would begin an upload.
func (s *Simulator) CanStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canStartLocked()
}

func (s *Simulator) canStartLocked() bool {
	return !s.isClosed() && s.file != nil && s.state != StateUploading
}

// Start begins the simulated upload. It returns false and does nothing when no
// file is selected, an upload is already running, or the simulator is closed.
// Cancelling ctx aborts the task without producing a record.
func (s *Simulator) Start(ctx context.Context) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canStartLocked() {
		return nil, false
	}

	tctx, cancel := context.WithCancel(ctx)
	t := &Task{
		ctx:    tctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.task = t
	s.state = StateUploading
	s.success = false

	timer := s.clock.NewTimer(s.delay)
	s.inflight.Add(1)
	go s.run(t, timer)

	return t, true
}

func (s *Simulator) run(t *Task, timer clockwork.Timer) {
	defer s.inflight.Done()
	defer close(t.done)
	defer t.cancel()

	select {
	case <-timer.Chan():
		s.complete(t)
	case <-t.ctx.Done():
		timer.Stop()
		s.abort(t, t.ctx.Err())
	case <-s.closed:
		timer.Stop()
		s.abort(t, ErrClosed)
	}
}

func (s *Simulator) complete(t *Task) {
	s.mu.Lock()
	if s.task != t || s.isClosed() || t.ctx.Err() != nil {
		s.mu.Unlock()
		err := t.ctx.Err()
		if err == nil {
			err = ErrClosed
		}
		s.abort(t, err)
		return
	}

	rec := s.gen.Generate(*s.file, s.summary)
	s.last = &rec
	s.file = nil
	s.summary = ""
	s.success = true
	s.state = StateSuccess
	s.task = nil
	t.record = rec
	cb := s.onComplete
	s.mu.Unlock()

	if cb != nil {
		cb(rec)
	}
}

func (s *Simulator) abort(t *Task, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.err = err
	if s.task != t {
		return
	}
	s.task = nil
	if s.file != nil {
		s.state = StateFileSelected
	} else {
		s.state = StateIdle
	}
}

// Snapshot returns a copy of the current state.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:   s.state,
		Summary: s.summary,
		Success: s.success,
		Closed:  s.isClosed(),
	}
	if s.file != nil {
		f := *s.file
		snap.File = &f
	}
	if s.last != nil {
		rec := *s.last
		snap.Last = &rec
	}
	return snap
}

// Close tears the simulator down. An in-flight task is aborted and Close waits
// for it to finish, so no completion callback runs after Close returns.
// Close must not be called from the completion callback.
func (s *Simulator) Close() {
	s.mu.Lock()
	s.closeOnce.Do(func() { close(s.closed) })
	s.mu.Unlock()

	s.inflight.Wait()
}

func (s *Simulator) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// Task is the handle of one in-flight upload.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// written before done is closed
	record model.DocumentRecord
	err    error
}

// Cancel aborts the upload if it has not completed yet.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has completed or been aborted.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its record, or the abort
// reason (context.Canceled, a context deadline error, or ErrClosed).
func (t *Task) Wait() (model.DocumentRecord, error) {
	<-t.done
	if t.err != nil {
		return model.DocumentRecord{}, t.err
	}
	return t.record, nil
}

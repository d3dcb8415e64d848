package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"docdash/internal/metrics"
	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/upload"
)

const tracerName = "docdash/service"

var (
	ErrSessionNotFound = errors.New("upload session not found")
	ErrUploadNotReady  = errors.New("no file selected or upload already running")
	ErrUploadBusy      = errors.New("upload in progress")
	ErrServiceClosed   = errors.New("upload service closed")
)

// UploadSession is the externally visible state of one upload widget.
type UploadSession struct {
	ID string `json:"id"`
	upload.Snapshot
}

// UploadService manages simulated upload sessions. Completed uploads are
// appended to the shared document repository.
type UploadService interface {
	// Open creates a new idle session.
	Open(ctx context.Context) (*UploadSession, error)

	// Get returns a session's current state.
	Get(ctx context.Context, id string) (*UploadSession, error)

	// SelectFile records the chosen file (name and size only).
	SelectFile(ctx context.Context, id string, file upload.FileRef) (*UploadSession, error)

	// SetSummary stores the optional summary text.
	SetSummary(ctx context.Context, id string, summary string) (*UploadSession, error)

	// Start begins the simulated upload. It returns ErrUploadNotReady when
	// the session has no file or is already uploading.
	Start(ctx context.Context, id string) (*UploadSession, error)

	// Cancel aborts an in-flight upload. It is a no-op when nothing runs.
	Cancel(ctx context.Context, id string) (*UploadSession, error)

	// Close tears a session down, aborting any in-flight upload.
	Close(ctx context.Context, id string) error

	// Shutdown closes every session. The service rejects new sessions afterwards.
	Shutdown()
}

type uploadSession struct {
	sim  *upload.Simulator
	mu   sync.Mutex
	task *upload.Task
}

type uploadService struct {
	repo    repository.DocumentRepository
	logger  *zap.Logger
	metrics *metrics.DashboardMetrics
	tracer  trace.Tracer
	simOpts []upload.Option

	// parent of every upload task; outlives the request that started it
	baseCtx context.Context
	stop    context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*uploadSession
	closed   bool
}

// UploadOption configures the upload service.
type UploadOption func(*uploadService)

// WithSimulatorOptions passes options to every session's simulator.
func WithSimulatorOptions(opts ...upload.Option) UploadOption {
	return func(s *uploadService) { s.simOpts = append(s.simOpts, opts...) }
}

// WithMetrics records upload metrics.
func WithMetrics(m *metrics.DashboardMetrics) UploadOption {
	return func(s *uploadService) { s.metrics = m }
}

// WithTracerProvider sets the provider for upload spans. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) UploadOption {
	return func(s *uploadService) { s.tracer = tp.Tracer(tracerName) }
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) UploadOption {
	return func(s *uploadService) { s.logger = l }
}

// NewUploadService constructs a new UploadService writing into repo.
func NewUploadService(repo repository.DocumentRepository, opts ...UploadOption) UploadService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &uploadService{
		repo:     repo,
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
		baseCtx:  ctx,
		stop:     cancel,
		sessions: make(map[string]*uploadSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *uploadService) Open(ctx context.Context) (*UploadSession, error) {
	id := uuid.NewString()
	sess := &uploadSession{
		sim: upload.NewSimulator(s.onComplete(id), s.simOpts...),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sess.sim.Close()
		return nil, ErrServiceClosed
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	s.metrics.SessionOpened()
	s.logger.Debug("upload session opened", zap.String("session_id", id))
	return view(id, sess), nil
}

func (s *uploadService) Get(ctx context.Context, id string) (*UploadSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return view(id, sess), nil
}

func (s *uploadService) SelectFile(ctx context.Context, id string, file upload.FileRef) (*UploadSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !sess.sim.SelectFile(file) {
		return nil, ErrUploadBusy
	}
	return view(id, sess), nil
}

func (s *uploadService) SetSummary(ctx context.Context, id string, summary string) (*UploadSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !sess.sim.SetSummary(summary) {
		return nil, ErrUploadBusy
	}
	return view(id, sess), nil
}

func (s *uploadService) Start(ctx context.Context, id string) (*UploadSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	task, ok := sess.sim.Start(s.baseCtx)
	if ok {
		sess.task = task
	}
	sess.mu.Unlock()
	if !ok {
		return nil, ErrUploadNotReady
	}

	s.metrics.UploadStarted()
	go s.watch(id, task)

	return view(id, sess), nil
}

// watch records the outcome of a task once it settles.
func (s *uploadService) watch(id string, task *upload.Task) {
	rec, err := task.Wait()
	s.metrics.UploadFinished(rec.Verified, err)
	if err != nil {
		s.logger.Debug("upload aborted", zap.String("session_id", id), zap.Error(err))
	}
}

func (s *uploadService) Cancel(ctx context.Context, id string) (*UploadSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	task := sess.task
	sess.task = nil
	sess.mu.Unlock()

	if task != nil {
		task.Cancel()
		select {
		case <-task.Done():
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return view(id, sess), nil
}

func (s *uploadService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.sim.Close()
	s.metrics.SessionClosed()
	s.logger.Debug("upload session closed", zap.String("session_id", id))
	return nil
}

func (s *uploadService) Shutdown() {
	s.mu.Lock()
	s.closed = true
	sessions := s.sessions
	s.sessions = make(map[string]*uploadSession)
	s.mu.Unlock()

	s.stop()
	for _, sess := range sessions {
		sess.sim.Close()
		s.metrics.SessionClosed()
	}
}

// onComplete appends the finished record to the shared repository.
func (s *uploadService) onComplete(sessionID string) upload.CompletionFunc {
	return func(rec model.DocumentRecord) {
		ctx, span := s.tracer.Start(s.baseCtx, "upload.complete",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.String("upload.session_id", sessionID),
				attribute.String("document.id", rec.ID),
				attribute.Int64("document.size_bytes", rec.SizeBytes),
				attribute.Bool("document.verified", rec.Verified),
			),
		)
		defer span.End()

		if err := s.repo.Append(ctx, rec); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "append failed")
			s.logger.Error("append uploaded document",
				zap.String("session_id", sessionID),
				zap.String("document_id", rec.ID),
				zap.Error(err),
			)
			return
		}

		if res, err := s.repo.List(ctx, repository.PageQuery{Limit: 1}); err == nil {
			s.metrics.SetDocuments(res.Total)
		}
		s.logger.Info("document uploaded",
			zap.String("session_id", sessionID),
			zap.String("document_id", rec.ID),
			zap.String("name", rec.Name),
			zap.String("size", rec.Size),
			zap.Bool("verified", rec.Verified),
		)
	}
}

func (s *uploadService) lookup(id string) (*uploadSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func view(id string, sess *uploadSession) *UploadSession {
	return &UploadSession{ID: id, Snapshot: sess.sim.Snapshot()}
}

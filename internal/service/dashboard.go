package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"docdash/internal/clipboard"
	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/upload"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("document not found")
)

const bytesPerMB = 1024 * 1024

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.DocumentRecord `json:"data"`
	Total int                    `json:"total"`
}

// StatusSource reports the cosmetic processing indicator.
type StatusSource interface {
	Processing() bool
}

// DashboardService defines the read side of the dashboard.
type DashboardService interface {
	// List returns documents using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.DocumentRecord, error)

	// Stats aggregates the stat cards from the current document sequence.
	Stats(ctx context.Context) (*model.DashboardStats, error)

	// Dashboard returns stats, the processing flag and every document.
	Dashboard(ctx context.Context) (*model.Dashboard, error)

	// Processing returns the current processing indicator.
	Processing() bool

	// Copy writes text to the clipboard. Failures are swallowed.
	Copy(text string)
}

type dashboardService struct {
	repo   repository.DocumentReader
	status StatusSource
	clip   clipboard.Clipboard
	logger *zap.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(repo repository.DocumentReader, status StatusSource, clip clipboard.Clipboard, logger *zap.Logger) DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dashboardService{repo: repo, status: status, clip: clip, logger: logger}
}

func (s *dashboardService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *dashboardService) Get(ctx context.Context, id string) (*model.DocumentRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	stats := computeStats(docs)
	return &stats, nil
}

func (s *dashboardService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	return &model.Dashboard{
		Stats:      computeStats(docs),
		Processing: s.Processing(),
		Documents:  docs,
	}, nil
}

func (s *dashboardService) Processing() bool {
	if s.status == nil {
		return false
	}
	return s.status.Processing()
}

func (s *dashboardService) Copy(text string) {
	if s.clip == nil {
		return
	}
	if err := s.clip.Copy(text); err != nil {
		s.logger.Debug("clipboard copy failed", zap.Error(err))
	}
}

func computeStats(docs []model.DocumentRecord) model.DashboardStats {
	var stats model.DashboardStats
	var bytes int64
	for _, d := range docs {
		stats.TotalDocuments++
		if d.Verified {
			stats.VerifiedDocuments++
		}
		if d.HasSummary() {
			stats.Summaries++
		}
		bytes += recordBytes(d)
	}
	stats.StorageUsed = upload.FormatSize(bytes)
	return stats
}

// recordBytes returns the byte size of a record, falling back to its display
// size for records that were seeded without a raw byte count.
func recordBytes(d model.DocumentRecord) int64 {
	if d.SizeBytes > 0 {
		return d.SizeBytes
	}
	var mb float64
	if _, err := fmt.Sscanf(strings.TrimSpace(d.Size), "%f MB", &mb); err != nil || mb < 0 {
		return 0
	}
	return int64(mb * bytesPerMB)
}

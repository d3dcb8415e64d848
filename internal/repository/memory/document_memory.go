package memory

import (
	"context"
	"fmt"
	"sync"

	"docdash/internal/model"
	"docdash/internal/repository"
)

// DocumentMemory is an in-memory implementation of repository.DocumentRepository.
// It keeps records in insertion order and is safe for concurrent use.
type DocumentMemory struct {
	mu    sync.RWMutex
	docs  []model.DocumentRecord
	index map[string]int
}

// NewDocumentMemory creates a store seeded with the given records.
// Seed records with duplicate IDs are rejected.
func NewDocumentMemory(seed ...model.DocumentRecord) (*DocumentMemory, error) {
	r := &DocumentMemory{
		docs:  make([]model.DocumentRecord, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, d := range seed {
		if err := r.appendLocked(d); err != nil {
			return nil, fmt.Errorf("seed %q: %w", d.ID, err)
		}
	}
	return r, nil
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Append adds a record at the end of the sequence.
func (r *DocumentMemory) Append(ctx context.Context, doc model.DocumentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appendLocked(doc)
}

func (r *DocumentMemory) appendLocked(doc model.DocumentRecord) error {
	if doc.ID == "" {
		return repository.ErrInvalidID
	}
	if _, ok := r.index[doc.ID]; ok {
		return repository.ErrDuplicateID
	}
	r.index[doc.ID] = len(r.docs)
	r.docs = append(r.docs, doc)
	return nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentMemory) FindByID(ctx context.Context, id string) (*model.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := r.docs[i]
	return &d, nil
}

// List returns documents using limit/offset pagination and a total count.
// A non-positive limit returns every document from offset on.
func (r *DocumentMemory) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.DocumentRecord], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.docs)
	start := min(max(pq.Offset, 0), total)
	end := total
	if pq.Limit > 0 {
		end = min(start+pq.Limit, total)
	}

	items := make([]model.DocumentRecord, end-start)
	copy(items, r.docs[start:end])

	return &repository.PageResult[model.DocumentRecord]{
		Items: items,
		Total: total,
	}, nil
}

// All returns a copy of every stored document.
func (r *DocumentMemory) All(ctx context.Context) ([]model.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DocumentRecord, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

// Len returns the number of stored documents.
func (r *DocumentMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

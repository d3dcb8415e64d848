package repository

import (
	"context"

	"docdash/internal/model"
)

// DocumentReader is the read-only view of the document sequence handed to list renderers.
type DocumentReader interface {
	// List returns a page of documents in insertion order and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.DocumentRecord], error)

	// FindByID returns a document by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.DocumentRecord, error)

	// All returns a copy of the whole sequence.
	All(ctx context.Context) ([]model.DocumentRecord, error)
}

// DocumentRepository is the single source of truth for the document sequence.
// The sequence is append-only: there is no update or delete path.
type DocumentRepository interface {
	DocumentReader

	// Append adds a record at the end of the sequence.
	// It returns ErrDuplicateID if a record with the same ID is already stored.
	Append(ctx context.Context, doc model.DocumentRecord) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

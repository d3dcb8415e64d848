package repository

import "errors"

// Package repository contains data access abstractions for the document sequence.
// Implementations live in subpackages (e.g., memory).

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicateID = errors.New("document id already exists")
	ErrInvalidID   = errors.New("document id is required")
)

package clipboard

import (
	"errors"
	"sync"
)

// ErrEmpty is returned by Memory.Copy for empty text.
var ErrEmpty = errors.New("clipboard: empty text")

// Clipboard is a write-only text sink.
type Clipboard interface {
	Copy(text string) error
}

// Memory is an in-process clipboard that keeps the last copied text.
type Memory struct {
	mu   sync.RWMutex
	last string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Copy replaces the clipboard contents.
func (m *Memory) Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}
	m.mu.Lock()
	m.last = text
	m.mu.Unlock()
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

package upload

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"docdash/internal/model"
)

const (
	// HashPrefix starts every synthetic hash.
	HashPrefix = "0x"
	// HashSeparator joins the two hex fragments of a synthetic hash.
	HashSeparator = "..."

	bytesPerMB = 1024 * 1024
	// unverifiedBelow is the draw threshold: draws above it mark the record
	// verified, giving a 70% verified rate.
	unverifiedBelow = 0.3
)

// FileRef is the part of a selected file the simulator looks at.
// File contents are never read.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Generator builds synthetic document records.
type Generator struct {
	src   Source
	clock clockwork.Clock
	newID func() string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSource sets the randomness source.
func WithSource(src Source) GeneratorOption {
	return func(g *Generator) { g.src = src }
}

// WithGeneratorClock sets the clock used for the upload date.
func WithGeneratorClock(c clockwork.Clock) GeneratorOption {
	return func(g *Generator) { g.clock = c }
}

// WithIDFunc sets the record id generator.
func WithIDFunc(fn func() string) GeneratorOption {
	return func(g *Generator) { g.newID = fn }
}

// NewGenerator creates a Generator backed by the runtime random source,
// the wall clock and UUID v4 ids unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		src:   DefaultSource(),
		clock: clockwork.NewRealClock(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one record for the given file and summary.
func (g *Generator) Generate(file FileRef, summary string) model.DocumentRecord {
	hash := FormatHash(g.src.Uint32(), g.src.Uint32())
	verified := g.src.Float64() > unverifiedBelow

	if summary == "" {
		summary = model.DefaultSummary
	}

	return model.DocumentRecord{
		ID:         g.newID(),
		Name:       file.Name,
		Summary:    summary,
		Hash:       hash,
		Verified:   verified,
		UploadDate: FormatDate(g.clock.Now()),
		Size:       FormatSize(file.Size),
		SizeBytes:  file.Size,
	}
}

// FormatHash renders two random words as "0x" + 8 hex + "..." + 8 hex.
func FormatHash(a, b uint32) string {
	return fmt.Sprintf("%s%08x%s%08x", HashPrefix, a, HashSeparator, b)
}

// FormatSize renders a byte count in binary megabytes with two decimals.
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}

// FormatDate truncates t to its UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

package model

// DefaultSummary is used when an upload carries no summary text.
const DefaultSummary = "No summary provided."

// DocumentRecord represents one document shown on the dashboard together with
// its display-only verification metadata.
// Records are values: once created they are never mutated, only appended to a store.
type DocumentRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	Hash       string `json:"hash"`
	Verified   bool   `json:"verified"`
	UploadDate string `json:"upload_date"`
	Size       string `json:"size"`
	// SizeBytes is the raw byte length of the uploaded file. Sample records only
	// know their display size and leave it at zero.
	SizeBytes int64 `json:"size_bytes"`
}

// HasSummary reports whether the record carries user-provided summary text.
func (d DocumentRecord) HasSummary() bool {
	return d.Summary != "" && d.Summary != DefaultSummary
}

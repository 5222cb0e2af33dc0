package types

import "time"

// DocumentKind identifies which of the two generated documents a value holds.
type DocumentKind string

// Document kinds produced by the generator.
const (
	DocumentResume      DocumentKind = "resume"
	DocumentCoverLetter DocumentKind = "cover_letter"
)

// GeneratedDocument represents a single generated text blob. The written
// file is the durable artifact; this value is transient.
type GeneratedDocument struct {
	Kind        DocumentKind
	Text        string
	GeneratedAt time.Time
	Path        string
}

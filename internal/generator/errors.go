package generator

import (
	"fmt"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// GenerationError represents a failure from the external generation service
// for one document. No output file is written when this occurs.
type GenerationError struct {
	Document types.DocumentKind
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Document, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure persisting a generated document to disk.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write document to %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

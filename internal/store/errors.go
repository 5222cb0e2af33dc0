package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when no document exists at the store path.
// Callers treat this as recoverable and fall back to interactive creation.
var ErrNotFound = errors.New("store document not found")

// StoreError represents a failure reading, writing, or decoding a store document.
type StoreError struct {
	Path    string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error for %s: %s", e.Path, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

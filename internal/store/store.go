// Package store persists the user profile and job description records as
// flat JSON documents at fixed paths. Each save is a whole-file overwrite;
// there is no merge or versioning.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Default store locations, relative to the working directory. They mirror
// the file names any previously saved records would live under.
const (
	DefaultProfilePath = "user_profile.json"
	DefaultJobPath     = "job_description.json"
)

// ProfileStore loads and saves the single active UserProfile record.
type ProfileStore struct {
	path string
}

// NewProfileStore creates a ProfileStore at path, or DefaultProfilePath if empty.
func NewProfileStore(path string) *ProfileStore {
	if path == "" {
		path = DefaultProfilePath
	}
	return &ProfileStore{path: path}
}

// Path returns the file path the store operates on.
func (s *ProfileStore) Path() string {
	return s.path
}

// Load reads the profile document. Returns ErrNotFound if no file exists.
func (s *ProfileStore) Load() (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := loadDocument(s.path, "user_profile.schema.json", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save serializes the profile, overwriting any prior content.
func (s *ProfileStore) Save(profile *types.UserProfile) error {
	return saveDocument(s.path, profile)
}

// JobStore loads and saves the single active JobDescription record.
type JobStore struct {
	path string
}

// NewJobStore creates a JobStore at path, or DefaultJobPath if empty.
func NewJobStore(path string) *JobStore {
	if path == "" {
		path = DefaultJobPath
	}
	return &JobStore{path: path}
}

// Path returns the file path the store operates on.
func (s *JobStore) Path() string {
	return s.path
}

// Load reads the job description document. Returns ErrNotFound if no file exists.
func (s *JobStore) Load() (*types.JobDescription, error) {
	var job types.JobDescription
	if err := loadDocument(s.path, "job_description.schema.json", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Save serializes the job description, overwriting any prior content.
func (s *JobStore) Save(job *types.JobDescription) error {
	return saveDocument(s.path, job)
}

// loadDocument reads a JSON document, checks it against the embedded schema,
// and unmarshals it into target.
func loadDocument(path, schemaName string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return &StoreError{Path: path, Message: "failed to read document", Cause: err}
	}

	if err := validateDocument(schemaName, path, data); err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &StoreError{Path: path, Message: "failed to parse document JSON", Cause: err}
	}

	return nil
}

// saveDocument marshals a record and overwrites the document file.
func saveDocument(path string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &StoreError{Path: path, Message: "failed to serialize record", Cause: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &StoreError{Path: path, Message: "failed to write document", Cause: err}
	}

	return nil
}

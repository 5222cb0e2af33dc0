// Package generator combines a user profile and a job description into
// resume and cover letter prompts, invokes the generation service once per
// document, and persists each returned text under a timestamped name.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Options configures a Generator.
type Options struct {
	// OutputDir is where document files are written. Defaults to the
	// working directory.
	OutputDir string
	// Now overrides the clock, for deterministic filenames in tests.
	Now func() time.Time
	// Progress receives step output. Defaults to os.Stdout.
	Progress io.Writer
}

// Generator produces the tailored resume and cover letter for one run.
type Generator struct {
	client    llm.Client
	outputDir string
	now       func() time.Time
	progress  io.Writer
}

// Result holds the two documents written by a run.
type Result struct {
	RunID       uuid.UUID
	Resume      types.GeneratedDocument
	CoverLetter types.GeneratedDocument
}

// New creates a Generator backed by the given generation client.
func New(client llm.Client, opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}
	return &Generator{
		client:    client,
		outputDir: opts.OutputDir,
		now:       opts.Now,
		progress:  opts.Progress,
	}
}

// Run generates and persists both documents, resume first. Both files share
// a single run timestamp. A generation failure aborts the run before any
// file is written for that document, and the underlying error is surfaced.
func (g *Generator) Run(ctx context.Context, user *types.UserProfile, job *types.JobDescription) (*Result, error) {
	runID := uuid.New()
	generatedAt := g.now()

	fmt.Fprintf(g.progress, "Step 1/2: Generating tailored resume with %s (run %s)...\n", g.client.Model(), runID)
	resume, err := g.generateDocument(ctx, types.DocumentResume, BuildResumePrompt(user, job), generatedAt)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(g.progress, "Step 2/2: Generating cover letter with %s (run %s)...\n", g.client.Model(), runID)
	coverLetter, err := g.generateDocument(ctx, types.DocumentCoverLetter, BuildCoverLetterPrompt(user, job), generatedAt)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:       runID,
		Resume:      *resume,
		CoverLetter: *coverLetter,
	}, nil
}

// generateDocument performs one generation call and writes the returned
// text verbatim to its timestamped file.
func (g *Generator) generateDocument(ctx context.Context, kind types.DocumentKind, prompt string, at time.Time) (*types.GeneratedDocument, error) {
	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Document: kind, Cause: err}
	}

	path := filepath.Join(g.outputDir, DocumentFilename(kind, at))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return nil, &WriteError{Path: path, Cause: err}
	}

	fmt.Fprintf(g.progress, "Saved %s to %s\n", kind, path)

	return &types.GeneratedDocument{
		Kind:        kind,
		Text:        text,
		GeneratedAt: at,
		Path:        path,
	}, nil
}

package generator

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// stubClient is a deterministic llm.Client replacement for tests.
type stubClient struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.responses[(s.calls-1)%len(s.responses)], nil
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.GenerateContent(ctx, prompt)
}

func (s *stubClient) Model() string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		FullName:            "Jane Doe",
		ContactEmail:        "jane@x.com",
		PhoneNumber:         "555-0100",
		ProfessionalSummary: "Backend engineer.",
		Skills:              []string{"Go", "SQL"},
		Experiences: []types.WorkExperience{
			{Company: "Acme", Role: "Engineer", Duration: "2019-2021", Description: "Built billing services"},
			{Company: "Globex", Role: "Senior Engineer", Duration: "2021-2024", Description: "Led platform team"},
		},
		Education: []types.Education{
			{Institution: "State U", Degree: "BSc in Computer Science", GraduationYear: "2018"},
		},
	}
}

func testJob() *types.JobDescription {
	return &types.JobDescription{
		CompanyName:    "Initech",
		PositionTitle:  "Backend Engineer",
		RequiredSkills: []string{"Go", "Postgres"},
		JobLocation:    "Remote",
		JobSummary:     "Own the billing platform.",
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 1, 15, 14, 30, 22, 0, time.Local)
	}
}

func TestRun_WritesTwoFiles(t *testing.T) {
	dir := t.TempDir()
	stub := &stubClient{responses: []string{"RESUME_TEXT", "LETTER_TEXT"}}
	g := New(stub, Options{OutputDir: dir, Now: fixedClock(), Progress: io.Discard})

	result, err := g.Run(context.Background(), testProfile(), testJob())
	require.NoError(t, err)

	assert.Equal(t, 2, stub.calls)
	assert.Equal(t, filepath.Join(dir, "job_app_resume_20240115_143022.txt"), result.Resume.Path)
	assert.Equal(t, filepath.Join(dir, "job_app_cover_letter_20240115_143022.txt"), result.CoverLetter.Path)

	resumeData, err := os.ReadFile(result.Resume.Path)
	require.NoError(t, err)
	assert.Equal(t, "RESUME_TEXT", string(resumeData))

	letterData, err := os.ReadFile(result.CoverLetter.Path)
	require.NoError(t, err)
	assert.Equal(t, "LETTER_TEXT", string(letterData))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_GenerationErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	serviceErr := errors.New("rate limited")
	stub := &stubClient{err: serviceErr}
	g := New(stub, Options{OutputDir: dir, Progress: io.Discard})

	_, err := g.Run(context.Background(), testProfile(), testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, serviceErr)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, types.DocumentResume, genErr.Document)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, stub.calls)
}

func TestRun_CoverLetterErrorKeepsResume(t *testing.T) {
	dir := t.TempDir()
	serviceErr := errors.New("connection reset")
	stub := &stubClient{responses: []string{"RESUME_TEXT"}}
	failing := &failAfter{inner: stub, failOn: 2, err: serviceErr}
	g := New(failing, Options{OutputDir: dir, Now: fixedClock(), Progress: io.Discard})

	_, err := g.Run(context.Background(), testProfile(), testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, serviceErr)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, types.DocumentCoverLetter, genErr.Document)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "job_app_resume_20240115_143022.txt", entries[0].Name())
}

// failAfter delegates to an inner client and fails the nth call.
type failAfter struct {
	inner  *stubClient
	failOn int
	err    error
	calls  int
}

func (f *failAfter) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls == f.failOn {
		return "", f.err
	}
	return f.inner.GenerateContent(ctx, prompt)
}

func (f *failAfter) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return f.GenerateContent(ctx, prompt)
}

func (f *failAfter) Model() string { return f.inner.Model() }

func (f *failAfter) Close() error { return nil }

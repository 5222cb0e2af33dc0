package ingestion

import (
	"context"
	"encoding/json"

	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/prompts"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// ExtractJobDescription asks the generation service to lift the structured
// job description fields out of cleaned posting text.
func ExtractJobDescription(ctx context.Context, client llm.Client, postingText string) (*types.JobDescription, error) {
	template, err := prompts.Get("extraction.json", "job-description")
	if err != nil {
		return nil, &ExtractError{Message: "failed to load extraction prompt", Cause: err}
	}

	prompt := prompts.Format(template, map[string]string{
		"PostingText": postingText,
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &ExtractError{Message: "generation call failed", Cause: err}
	}

	var job types.JobDescription
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, &ExtractError{Message: "model returned malformed JSON", Cause: err}
	}

	return &job, nil
}

// IngestFromURL fetches a posting page and extracts its job description.
func IngestFromURL(ctx context.Context, client llm.Client, urlStr string) (*types.JobDescription, error) {
	text, err := FetchPostingText(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	return ExtractJobDescription(ctx, client, text)
}

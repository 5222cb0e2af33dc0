package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchandra1/Job-Application-Assistant/internal/config"
	"github.com/hchandra1/Job-Application-Assistant/internal/generator"
	"github.com/hchandra1/Job-Application-Assistant/internal/ingestion"
	"github.com/hchandra1/Job-Application-Assistant/internal/interview"
	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/observability"
	"github.com/hchandra1/Job-Application-Assistant/internal/store"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

var (
	flagConfigPath  string
	flagProfilePath string
	flagJobPath     string
	flagJobURL      string
	flagOutputDir   string
	flagModel       string
	flagAPIKey      string
	flagVerbose     bool
)

func init() {
	// Config file flag (processed first)
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.Flags().StringVar(&flagProfilePath, "profile", "", "Path to the user profile store (default user_profile.json)")
	rootCmd.Flags().StringVar(&flagJobPath, "job", "", "Path to the job description store (default job_description.json)")
	rootCmd.Flags().StringVar(&flagJobURL, "job-url", "", "Ingest the job description from a posting URL instead of prompting")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Directory for generated documents (default current directory)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Generation model identifier")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed record summaries")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
}

func runAssistant(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if flagConfigPath != "" {
		loadedCfg, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("profile") {
		cfg.ProfilePath = flagProfilePath
	}
	if cmd.Flags().Changed("job") {
		cfg.JobPath = flagJobPath
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = flagJobURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = flagModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		ProfilePath: store.DefaultProfilePath,
		JobPath:     store.DefaultJobPath,
		OutputDir:   ".",
		Model:       llm.DefaultModel,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: API key handling. A missing credential is fatal before any
	// generation attempt.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = client.Close() }()

	out := cmd.OutOrStdout()
	iv := interview.New(cmd.InOrStdin(), out)

	fmt.Fprintln(out, "=============================================")
	fmt.Fprintln(out, "    Welcome to the Job Application Assistant")
	fmt.Fprintln(out, "=============================================")

	// Step 5: Acquire the user profile
	profile, err := acquireProfile(iv, out, store.NewProfileStore(cfg.ProfilePath))
	if err != nil {
		return err
	}

	// Step 6: Acquire the job description
	job, err := acquireJob(ctx, iv, out, client, store.NewJobStore(cfg.JobPath), cfg.JobURL)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintUserProfile(profile)
		printer.PrintJobDescription(job)
	}

	// Step 7: Generate and save both documents
	gen := generator.New(client, generator.Options{
		OutputDir: cfg.OutputDir,
		Progress:  out,
	})
	result, err := gen.Run(ctx, profile, job)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nYour tailored resume and cover letter have been generated and saved.")
	fmt.Fprintf(out, "Resume:       %s\n", result.Resume.Path)
	fmt.Fprintf(out, "Cover Letter: %s\n", result.CoverLetter.Path)

	return nil
}

// acquireProfile loads the stored profile or gathers and saves a new one.
// A missing store file falls back to interactive creation.
func acquireProfile(iv *interview.Interviewer, out io.Writer, profiles *store.ProfileStore) (*types.UserProfile, error) {
	load, err := iv.Confirm(fmt.Sprintf("\nLoad existing user profile from %s?", profiles.Path()))
	if err != nil {
		return nil, err
	}

	if load {
		profile, err := profiles.Load()
		if err == nil {
			fmt.Fprintf(out, "Loaded user profile from %s\n", profiles.Path())
			return profile, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		fmt.Fprintf(out, "No profile found at %s, creating a new one.\n", profiles.Path())
	}

	profile, err := iv.GatherUserProfile()
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if err := profiles.Save(profile); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "User profile saved to %s\n", profiles.Path())

	return profile, nil
}

// acquireJob loads the stored job description, ingests one from a posting
// URL, or gathers and saves a new one interactively.
func acquireJob(ctx context.Context, iv *interview.Interviewer, out io.Writer, client llm.Client, jobs *store.JobStore, jobURL string) (*types.JobDescription, error) {
	if jobURL != "" {
		fmt.Fprintf(out, "\nIngesting job posting from %s...\n", jobURL)
		job, err := ingestion.IngestFromURL(ctx, client, jobURL)
		if err != nil {
			return nil, err
		}
		if err := jobs.Save(job); err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "Job description saved to %s\n", jobs.Path())
		return job, nil
	}

	load, err := iv.Confirm(fmt.Sprintf("\nLoad existing job description from %s?", jobs.Path()))
	if err != nil {
		return nil, err
	}

	if load {
		job, err := jobs.Load()
		if err == nil {
			fmt.Fprintf(out, "Loaded job description from %s\n", jobs.Path())
			return job, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		fmt.Fprintf(out, "No job description found at %s, creating a new one.\n", jobs.Path())
	}

	job, err := iv.GatherJobDescription()
	if err != nil {
		return nil, err
	}
	if err := jobs.Save(job); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Job description saved to %s\n", jobs.Path())

	return job, nil
}

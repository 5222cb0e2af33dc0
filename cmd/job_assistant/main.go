// Package main provides the entry point for the Job Application Assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_assistant",
	Short: "Job Application Assistant",
	Long: `Job Application Assistant collects your profile and a job description,
generates a tailored resume and cover letter through the Gemini API, and
saves both as timestamped text files.`,
	SilenceUsage: true,
	RunE:         runAssistant,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

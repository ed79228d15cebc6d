// Package main provides the entry point for the skill-match HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Resume skill extraction and job-matching API server",
	Long:  "skillmatch extracts normalized technical skills from resumes and scores job/candidate fitment by blending semantic similarity with required-skill coverage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

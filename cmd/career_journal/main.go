// Package main provides the entry point for the career_journal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "career_journal",
	Short:         "Career Journal keeps a profile and a timeline of career entries",
	Long:          "Career Journal records a personal profile and a newest-first timeline of roles, with achievements, responsibilities and skills, and exports them as JSON or YAML.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath  string
	storageName string
	storagePath string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&storageName, "storage", "", "Storage backend: memory, dir, sqlite, redis or postgres")
	rootCmd.PersistentFlags().StringVar(&storagePath, "path", "", "Directory (dir) or database file (sqlite) holding saved data")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

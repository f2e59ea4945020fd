package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/shortlist"
)

var shortlistDBPath string

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Inspect or clear the shortlist database",
}

var shortlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all shortlisted candidates",
	RunE:  runShortlistList,
}

var shortlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all shortlisted candidates",
	RunE:  runShortlistClear,
}

func init() {
	shortlistCmd.PersistentFlags().StringVar(&shortlistDBPath, "db",
		config.Defaults().ShortlistPath, "Path to the shortlist SQLite database")
	shortlistCmd.AddCommand(shortlistListCmd)
	shortlistCmd.AddCommand(shortlistClearCmd)
	rootCmd.AddCommand(shortlistCmd)
}

func runShortlistList(cmd *cobra.Command, _ []string) error {
	store, err := shortlist.Open(shortlistDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No shortlisted candidates.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "#%d %s (%.1f years) recorded %s\n",
			rec.ID, rec.CandidateName, rec.WorkExperienceYears,
			rec.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(cmd.OutOrStdout(), "   skills:   %s\n", rec.Skills)
		if rec.Projects != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "   projects: %s\n", rec.Projects)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d candidate(s)\n", len(records))
	return nil
}

func runShortlistClear(cmd *cobra.Command, _ []string) error {
	store, err := shortlist.Open(shortlistDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Shortlist cleared.")
	return nil
}

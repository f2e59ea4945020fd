package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/roles"
)

var (
	searchRole      string
	searchRolesPath string
)

var searchCmd = &cobra.Command{
	Use:   "search [query terms...]",
	Short: "Rank stored candidates against a skill query or a job role",
	Long: `Rank candidates in the database against free-text skill terms, or against a
predefined job role with --role. Only candidates at or above the shortlist
threshold are printed. Requires DATABASE_URL.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchRole, "role", "", "job role key to match against (e.g. backend_developer)")
	searchCmd.Flags().StringVar(&searchRolesPath, "roles", "", "path to a job roles JSON file (defaults to built-in roles)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchRole == "" && len(args) == 0 {
		return errors.New("provide query terms or --role")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}

	catalog := roles.Default()
	if searchRolesPath != "" {
		loaded, err := roles.LoadCatalog(searchRolesPath)
		if err != nil {
			return err
		}
		catalog = loaded
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	engine := ranking.New(database, catalog)
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if searchRole != "" {
		matches, err := engine.SearchByRole(ctx, searchRole)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Role: %s\n", matches.Role.Title)
		printer.PrintMatchResults(matches.Candidates)
		return nil
	}

	results, err := engine.Search(ctx, strings.Join(args, " "), ranking.Filters{})
	if err != nil {
		return err
	}
	printer.PrintMatchResults(results)
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/roles"
)

var rolesPath string

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the job-role catalog",
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().StringVar(&rolesPath, "roles", "", "Path to a role catalog JSON file (defaults to built-in roles)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	catalog := roles.Default()
	if rolesPath != "" {
		loaded, err := roles.LoadCatalog(rolesPath)
		if err != nil {
			return err
		}
		catalog = loaded
	}

	for _, role := range catalog.List() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-25s %s\n", role.Key, role.Title)
		fmt.Fprintf(cmd.OutOrStdout(), "%-25s skills: %s\n", "", strings.Join(role.Skills, ", "))
	}
	return nil
}

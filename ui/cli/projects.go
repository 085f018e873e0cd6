// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// projectCmd is the root command for project management operations.
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects (list, create, rename, delete)",
	Long: `The 'project' command group provides full project management capabilities:
  - List all registered projects
  - Create new projects with a unique key
  - Check whether a key is taken
  - Rename projects
  - Delete projects`,
}

// projectListCmd lists all projects in table format.
var projectListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all projects",
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := registry.ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		// Display as table
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKEY\tNAME\tCREATED")
		for _, p := range projects {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Key, p.Name, p.CreatedAt)
		}
		w.Flush()

		return nil
	},
}

// projectCreateCmd registers a new project.
var projectCreateCmd = &cobra.Command{
	Use:   "create <key> [name]",
	Short: "Create a new project",
	Long: `Registers a new project under a unique key. The display name defaults
to the key when omitted.`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		name := key
		if len(args) > 1 {
			name = args[1]
		}

		p, err := registry.CreateProject(cmd.Context(), key, name)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		fmt.Printf("Created project %s\n", p.String())

		if copyKey, _ := cmd.Flags().GetBool("copy"); copyKey {
			if err := clipboard.WriteAll(p.Key); err != nil {
				log.Warnf("could not copy key to clipboard: %v", err)
			} else {
				fmt.Println("Key copied to clipboard.")
			}
		}
		return nil
	},
}

// projectExistsCmd reports whether a key is already taken.
var projectExistsCmd = &cobra.Command{
	Use:     "exists <key>",
	Short:   "Check whether a project key is taken",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		taken, err := registry.ProjectExists(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to check key: %w", err)
		}
		if taken {
			fmt.Printf("Key %q is taken.\n", args[0])
		} else {
			fmt.Printf("Key %q is available.\n", args[0])
		}
		return nil
	},
}

// projectRenameCmd changes a project's display name.
var projectRenameCmd = &cobra.Command{
	Use:     "rename <key> <name>",
	Short:   "Rename a project",
	Args:    cobra.ExactArgs(2),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := registry.RenameProject(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to rename project: %w", err)
		}
		fmt.Printf("Renamed project %s to %q\n", args[0], args[1])
		return nil
	},
}

// projectDeleteCmd removes a project.
var projectDeleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Short:   "Delete a project",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := registry.DeleteProject(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		fmt.Printf("Deleted project %s\n", args[0])
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().Bool("copy", false, "Copy the new project key to the clipboard")

	projectCmd.AddCommand(
		projectListCmd,
		projectCreateCmd,
		projectExistsCmd,
		projectRenameCmd,
		projectDeleteCmd,
	)
}

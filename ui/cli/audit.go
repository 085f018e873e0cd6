// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/trackmaster/internal/db"
)

// auditCmd prints the audit log, most recent entries first.
var auditCmd = &cobra.Command{
	Use:     "audit",
	Short:   "Show the audit log",
	Long:    `Display all recorded registry mutations in table format, most recent first.`,
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := db.GetAllAuditLogEntries()
		if err != nil {
			return fmt.Errorf("failed to load audit log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries.")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIMESTAMP\tUSER\tACTION\tDETAILS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.Username, e.Action, e.Details)
		}
		w.Flush()

		return nil
	},
}

func init() {
	auditCmd.Flags().Int("limit", 0, "Show at most this many entries (0 = all)")
}

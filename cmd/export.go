package cmd

import (
	"fmt"

	"github.com/ptdat/prodomo/internal/export"
	"github.com/ptdat/prodomo/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions and tasks to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			sessions, err := s.ListSessions()
			if err != nil {
				return err
			}
			tasks, err := s.ListTasks(store.TaskFilter{})
			if err != nil {
				return err
			}

			switch format {
			case "json":
				if out == "" {
					out = "prodomo-export.json"
				}
				if err := export.ToJSON(sessions, tasks, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions and %d tasks to %s\n",
					len(sessions), len(tasks), out)
			case "csv":
				if out == "" {
					out = "prodomo-sessions.csv"
				}
				if err := export.SessionsToCSV(sessions, out); err != nil {
					return err
				}
				tasksOut := "prodomo-tasks.csv"
				if err := export.TasksToCSV(tasks, tasksOut); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to %s and %d tasks to %s\n",
					len(sessions), out, len(tasks), tasksOut)
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format (json or csv)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file path")

	return cmd
}

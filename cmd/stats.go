package cmd

import (
	"fmt"
	"time"

	"github.com/ptdat/prodomo/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a focus summary without launching the dashboard",
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

			now := time.Now()
			summary := stats.Summarize(sessions, now)

			weekStart := time.Monday
			if v, err := s.GetSetting("week_start"); err == nil {
				weekStart = stats.ParseWeekStart(v)
			}
			buckets := stats.WeekBuckets(sessions, now, weekStart)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total focus:   %.1fh over %d sessions\n", summary.TotalHours, summary.Sessions)
			fmt.Fprintf(out, "Streak:        %d days\n", summary.Streak)
			fmt.Fprintf(out, "Daily average: %.1fh\n", summary.DailyAverage)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Week of %s\n", buckets[0].Date.Format("Jan 02"))
			for _, b := range buckets {
				marker := " "
				if b.IsToday {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s  %.1fh\n", marker, b.Label, b.Hours)
			}
			return nil
		},
	}
}

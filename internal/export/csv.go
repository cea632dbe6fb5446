package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/ptdat/prodomo/internal/store"
)

func SessionsToCSV(sessions []store.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Timestamp", "Duration (min)", "Mode"}); err != nil {
		return err
	}

	for _, s := range sessions {
		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.Timestamp.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", s.DurationMin),
			s.Mode,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func TasksToCSV(tasks []store.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Text", "Completed", "Created", "Deadline"}); err != nil {
		return err
	}

	for _, t := range tasks {
		completed := "no"
		if t.Completed {
			completed = "yes"
		}
		deadline := ""
		if t.Deadline != nil {
			deadline = t.Deadline.Local().Format(time.RFC3339)
		}
		row := []string{t.ID, t.Text, completed, t.CreatedAt.Local().Format(time.RFC3339), deadline}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

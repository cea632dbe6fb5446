package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ptdat/prodomo/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Sessions   []jsonSession `json:"sessions"`
	Tasks      []jsonTask    `json:"tasks"`
}

// jsonSession keeps the date/duration/mode field names the browser version
// of the dashboard used, so an export doubles as an interchange file.
type jsonSession struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Mode     string `json:"mode"`
}

type jsonTask struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	Deadline    string `json:"deadline,omitempty"`
	ReminderSet bool   `json:"reminderSet"`
}

func ToJSON(sessions []store.Session, tasks []store.Task, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sessions:   []jsonSession{},
		Tasks:      []jsonTask{},
	}

	for _, s := range sessions {
		out.Sessions = append(out.Sessions, jsonSession{
			Date:     s.Timestamp.Local().Format(time.RFC3339),
			Duration: s.DurationMin,
			Mode:     s.Mode,
		})
	}
	for _, t := range tasks {
		jt := jsonTask{
			ID:          t.ID,
			Text:        t.Text,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Local().Format(time.RFC3339),
			ReminderSet: t.ReminderSet,
		}
		if t.Deadline != nil {
			jt.Deadline = t.Deadline.Local().Format(time.RFC3339)
		}
		out.Tasks = append(out.Tasks, jt)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

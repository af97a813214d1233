package telegram

import (
	"fmt"
	"strings"

	"taskping/internal/model"
)

// numberedList renders tasks as "1. <line>" rows under a header.
func (h *handler) numberedList(header string, tasks []model.Task) string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, model.FormatTaskLine(h.civil, t)))
	}
	return strings.Join(lines, "\n")
}

// addedText is the confirmation for a persisted intake batch.
func (h *handler) addedText(tasks []model.Task) string {
	if len(tasks) == 1 {
		t := tasks[0]
		due := ""
		if t.DueAt != nil {
			due = " — " + h.civil.Format(*t.DueAt)
		}
		return fmt.Sprintf("Task added: %s%s ✅", t.Title, due)
	}
	return h.numberedList(fmt.Sprintf("Added %d tasks:", len(tasks)), tasks)
}

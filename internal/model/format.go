package model

import (
	"strings"

	"taskping/pkg/civiltime"
)

// FormatTaskLine renders the single-line chat representation of a
// task: title, then due time, priority flag and tags when present.
func FormatTaskLine(civil *civiltime.Authority, t Task) string {
	parts := []string{t.Title}
	if t.DueAt != nil {
		parts = append(parts, "⏰ "+civil.Format(*t.DueAt))
	}
	if t.Priority == PriorityHigh {
		parts = append(parts, "🔥 High priority")
	}
	if len(t.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(t.Tags, " #"))
	}
	return strings.Join(parts, " — ")
}

package model

import "time"

// TaskPriority is the user-facing priority of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "HIGH"
	PriorityNormal TaskPriority = "NORMAL"
	PriorityLow    TaskPriority = "LOW"
)

// TaskStatus is the lifecycle state of a task. Transitions are one-way:
// OPEN → DONE.
type TaskStatus string

const (
	StatusOpen TaskStatus = "OPEN"
	StatusDone TaskStatus = "DONE"
)

// Task is a scheduled task owned by a single chat.
//
// Invariants: DueAt absent implies RemindAt and EarlyRemindAt absent.
// RemindAt and EarlyRemindAt are cleared once their reminder fires and
// never fire twice.
type Task struct {
	ID              string
	ChatID          int64
	SourceMessageID *int64 // the message the task was extracted from
	Title           string
	Description     string
	DueAt           *time.Time
	RemindAt        *time.Time
	EarlyRemindAt   *time.Time
	Priority        TaskPriority
	Tags            []string
	Status          TaskStatus
	CreatedAt       time.Time
}

// ParsePriority maps an extractor priority string to a TaskPriority,
// defaulting to NORMAL.
func ParsePriority(s string) TaskPriority {
	switch s {
	case "high", "HIGH":
		return PriorityHigh
	case "low", "LOW":
		return PriorityLow
	default:
		return PriorityNormal
	}
}

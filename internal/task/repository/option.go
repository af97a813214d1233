package repository

import (
	"time"

	"taskping/internal/model"
)

// CreateTaskOptions holds one fully normalized task ready for insertion.
type CreateTaskOptions struct {
	ChatID          int64
	SourceMessageID *int64
	Title           string
	Description     string
	DueAt           *time.Time
	RemindAt        *time.Time
	EarlyRemindAt   *time.Time
	Priority        model.TaskPriority
	Tags            []string
}

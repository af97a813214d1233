package repository

import (
	"context"
	"time"

	"taskping/internal/model"
)

// Repository is the storage boundary for scheduled tasks.
//
// Ordering contract: every listing that feeds ordinal addressing returns
// OPEN tasks ordered by due ascending with undated tasks last, ties
// broken by creation time ascending.
type Repository interface {
	// CreateTasks persists the batch in a single transaction: all tasks
	// from one inbound message become visible together or not at all.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)

	// ListOpen returns up to limit open tasks for the chat under the
	// ordering contract.
	ListOpen(ctx context.Context, chatID int64, limit int) ([]model.Task, error)

	// ListOpenInRange returns the chat's open tasks with due in
	// [start, end), due ascending.
	ListOpenInRange(ctx context.Context, chatID int64, start, end time.Time) ([]model.Task, error)

	// ListDueReminders returns all open tasks, across chats, with a
	// primary or early reminder trigger at or before now.
	ListDueReminders(ctx context.Context, now time.Time) ([]model.Task, error)

	// MarkDone transitions the task to DONE. The update is conditional on
	// the row still being OPEN; ErrNotFound otherwise.
	MarkDone(ctx context.Context, id string) (model.Task, error)

	// Reschedule sets a new due time and clears both reminder triggers,
	// conditional on the row still being OPEN.
	Reschedule(ctx context.Context, id string, newDue time.Time) (model.Task, error)

	// ClearReminder nulls one reminder trigger field so it never fires
	// again.
	ClearReminder(ctx context.Context, id string, field ReminderField) error

	// DistinctOpenChats returns every chat that has at least one open
	// task.
	DistinctOpenChats(ctx context.Context) ([]int64, error)
}

// ReminderField names one of the two reminder trigger columns.
type ReminderField int

const (
	ReminderPrimary ReminderField = iota
	ReminderEarly
)

package task

import (
	"context"
	"time"

	"taskping/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Intake extracts drafts from free text, normalizes them and persists
	// the whole batch atomically.
	Intake(ctx context.Context, sc model.Scope, input IntakeInput) (IntakeOutput, error)

	// Upcoming returns the chat's next open tasks (due ascending, undated
	// last), capped at UpcomingLimit.
	Upcoming(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Today returns the chat's open tasks due within today's civil-day
	// bounds, due ascending.
	Today(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// CompleteByOrdinal marks the K-th open task done. Returns
	// ErrTaskNotFound when K is out of range.
	CompleteByOrdinal(ctx context.Context, sc model.Scope, ordinal int) (model.Task, error)

	// SnoozeByOrdinal pushes the K-th open task's due time forward by d
	// and clears both reminder triggers. Returns ErrTaskNotFound when K
	// is out of range.
	SnoozeByOrdinal(ctx context.Context, sc model.Scope, ordinal int, d time.Duration) (model.Task, error)
}

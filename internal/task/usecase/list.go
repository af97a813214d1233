package usecase

import (
	"context"

	"taskping/internal/model"
	"taskping/internal/task"
)

// Upcoming returns the chat's next open tasks: due ascending, undated
// last, creation order as tie-break.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	return uc.repo.ListOpen(ctx, sc.ChatID, task.UpcomingLimit)
}

// Today returns the chat's open tasks due within today's civil-day
// bounds.
func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	start, end := uc.civil.DayBoundsUTC()
	return uc.repo.ListOpenInRange(ctx, sc.ChatID, start, end)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"taskping/internal/model"
	"taskping/internal/task"
	"taskping/internal/task/repository"
)

// resolveOrdinal maps a 1-based list position to a task. The position
// is evaluated against live state at call time, not a stable identity:
// a concurrent mutation between the user's listing and this call can
// shift which task the ordinal lands on. The follow-up update is by id,
// so the resolved task is mutated even if positions have shifted since.
func (uc *implUseCase) resolveOrdinal(ctx context.Context, sc model.Scope, ordinal int) (model.Task, error) {
	if ordinal < 1 {
		return model.Task{}, task.ErrTaskNotFound
	}

	tasks, err := uc.repo.ListOpen(ctx, sc.ChatID, ordinal)
	if err != nil {
		return model.Task{}, err
	}
	if len(tasks) < ordinal {
		return model.Task{}, task.ErrTaskNotFound
	}
	return tasks[ordinal-1], nil
}

// CompleteByOrdinal marks the K-th open task done.
func (uc *implUseCase) CompleteByOrdinal(ctx context.Context, sc model.Scope, ordinal int) (model.Task, error) {
	target, err := uc.resolveOrdinal(ctx, sc, ordinal)
	if err != nil {
		return model.Task{}, err
	}

	done, err := uc.repo.MarkDone(ctx, target.ID)
	if errors.Is(err, repository.ErrNotFound) {
		// Lost a race: the task closed between resolution and update.
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task/usecase.CompleteByOrdinal: chat=%d ordinal=%d id=%s", sc.ChatID, ordinal, done.ID)
	return done, nil
}

// SnoozeByOrdinal pushes the K-th open task's due time forward by d.
// An undated task is snoozed relative to now. Both reminder triggers
// are cleared and deliberately not re-derived against the new due time.
func (uc *implUseCase) SnoozeByOrdinal(ctx context.Context, sc model.Scope, ordinal int, d time.Duration) (model.Task, error) {
	target, err := uc.resolveOrdinal(ctx, sc, ordinal)
	if err != nil {
		return model.Task{}, err
	}

	base := uc.civil.Now()
	if target.DueAt != nil {
		base = *target.DueAt
	}

	moved, err := uc.repo.Reschedule(ctx, target.ID, base.Add(d))
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task/usecase.SnoozeByOrdinal: chat=%d ordinal=%d id=%s due=%s", sc.ChatID, ordinal, moved.ID, base.Add(d))
	return moved, nil
}

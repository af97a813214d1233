package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskping/internal/model"
	"taskping/internal/task"
	"taskping/pkg/civiltime"
	"taskping/pkg/gcalendar"
)

// calendarEventLength is the block reserved in the calendar for a
// mirrored task.
const calendarEventLength = 30 * time.Minute

// Intake extracts drafts from raw text, normalizes them, and persists
// the whole batch atomically. Zero created tasks is a valid outcome:
// the extractor found nothing actionable.
func (uc *implUseCase) Intake(ctx context.Context, sc model.Scope, input task.IntakeInput) (task.IntakeOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.IntakeOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "%s: chat=%d input_length=%d", logPrefixIntake, sc.ChatID, len(input.RawText))

	drafts, err := uc.extractDrafts(ctx, input.RawText)
	if err != nil {
		// Degraded outcome: the user sees "no tasks found" rather than a
		// fault, and the message is not retried.
		uc.l.Errorf(ctx, "%s: %v", logPrefixIntake, err)
		return task.IntakeOutput{}, nil
	}
	if len(drafts) == 0 {
		return task.IntakeOutput{}, nil
	}

	var sourceMessageID *int64
	if input.SourceMessageID != 0 {
		sourceMessageID = &input.SourceMessageID
	}

	created, err := uc.repo.CreateTasks(ctx, normalizeBatch(sc, sourceMessageID, drafts))
	if err != nil {
		return task.IntakeOutput{}, fmt.Errorf("%s: failed to persist batch: %w", logPrefixIntake, err)
	}

	uc.l.Infof(ctx, "%s: created %d task(s) for chat=%d", logPrefixIntake, len(created), sc.ChatID)

	for _, t := range created {
		uc.tryCreateCalendarEvent(ctx, t)
	}

	return task.IntakeOutput{Tasks: created}, nil
}

// tryCreateCalendarEvent mirrors a dated task into the calendar.
// Failures degrade gracefully: the task is already saved.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueAt == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueAt,
		EndTime:     t.DueAt.Add(calendarEventLength),
		Timezone:    civiltime.IANAName,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar event for %q failed (non-fatal): %v", logPrefixIntake, t.Title, err)
	}
}

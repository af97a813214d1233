package scheduler

import (
	"context"
	"fmt"

	"taskping/internal/model"
	"taskping/internal/task/repository"
)

const logPrefixReminders = "scheduler.RunDueReminders"

// RunDueReminders scans for open tasks with an elapsed reminder
// trigger and notifies their chats. The primary trigger takes
// precedence when both have elapsed; only the fired field is cleared,
// and only after the send succeeded. A failed send leaves the trigger
// intact for the next pass. Per-task failures never abort the scan.
func (s *Scheduler) RunDueReminders(ctx context.Context) error {
	now := s.civil.Now()

	tasks, err := s.repo.ListDueReminders(ctx, now)
	if err != nil {
		return fmt.Errorf("%s: failed to list due reminders: %w", logPrefixReminders, err)
	}

	for _, t := range tasks {
		var (
			field  repository.ReminderField
			header string
		)
		switch {
		case t.RemindAt != nil && !t.RemindAt.After(now):
			field, header = repository.ReminderPrimary, "Reminder ⏰"
		case t.EarlyRemindAt != nil && !t.EarlyRemindAt.After(now):
			field, header = repository.ReminderEarly, "Heads up ⏰ (early reminder)"
		default:
			continue
		}

		text := header + "\n" + model.FormatTaskLine(s.civil, t)
		if err := s.notifier.SendMessage(t.ChatID, text); err != nil {
			s.l.Warnf(ctx, "%s: send to chat=%d for task=%s failed, trigger kept: %v", logPrefixReminders, t.ChatID, t.ID, err)
			continue
		}

		if err := s.repo.ClearReminder(ctx, t.ID, field); err != nil {
			s.l.Errorf(ctx, "%s: failed to clear trigger for task=%s: %v", logPrefixReminders, t.ID, err)
		}
	}

	return nil
}

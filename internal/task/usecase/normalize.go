package usecase

import (
	"strings"
	"time"

	"taskping/internal/model"
	"taskping/internal/task"
	"taskping/internal/task/repository"
)

// earlyReminderLead is the fixed lead synthesized for high-priority
// tasks that carry a due time but no explicit early reminder.
const earlyReminderLead = 30 * time.Minute

// normalizeDraft resolves one draft into storage options. Pure: it
// never consults the store and never fails.
//
// Primary reminder: explicit lead applied to the due time when both are
// present; equal to the due time when only the due time is present;
// absent otherwise. A lead without a due time yields no reminder.
// Explicit leads are applied as given;
// a negative lead is the caller's error, not normalized away.
//
// Early reminder: explicit early lead applied to the due time when
// present; synthesized as due − 30m for HIGH priority; absent otherwise.
//
// Tags are lower-cased but duplicates are kept: intake preserves tag
// multiplicity.
func normalizeDraft(sc model.Scope, sourceMessageID *int64, d task.Draft) repository.CreateTaskOptions {
	opt := repository.CreateTaskOptions{
		ChatID:          sc.ChatID,
		SourceMessageID: sourceMessageID,
		Title:           d.Title,
		Description:     d.Description,
		DueAt:           d.DueAt,
		Priority:        d.Priority,
	}
	if opt.Priority == "" {
		opt.Priority = model.PriorityNormal
	}

	if d.DueAt != nil {
		due := *d.DueAt

		if d.ReminderLeadMinutes != nil {
			remindAt := due.Add(-time.Duration(*d.ReminderLeadMinutes) * time.Minute)
			opt.RemindAt = &remindAt
		} else {
			remindAt := due
			opt.RemindAt = &remindAt
		}

		if d.EarlyReminderLeadMinutes != nil {
			earlyAt := due.Add(-time.Duration(*d.EarlyReminderLeadMinutes) * time.Minute)
			opt.EarlyRemindAt = &earlyAt
		} else if opt.Priority == model.PriorityHigh {
			earlyAt := due.Add(-earlyReminderLead)
			opt.EarlyRemindAt = &earlyAt
		}
	}

	opt.Tags = make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		opt.Tags = append(opt.Tags, strings.ToLower(tag))
	}

	return opt
}

// normalizeBatch resolves all drafts from one inbound message. The
// caller persists the result as a single atomic write.
func normalizeBatch(sc model.Scope, sourceMessageID *int64, drafts []task.Draft) []repository.CreateTaskOptions {
	opts := make([]repository.CreateTaskOptions, 0, len(drafts))
	for _, d := range drafts {
		opts = append(opts, normalizeDraft(sc, sourceMessageID, d))
	}
	return opts
}

package task

import (
	"time"

	"taskping/internal/model"
)

// Draft is a transient task candidate produced by the extraction
// boundary. It has no identity; the normalizer consumes it into a
// persisted task.
type Draft struct {
	Title       string
	Description string
	DueAt       *time.Time
	// Lead minutes before DueAt. Nil means "use the default policy".
	ReminderLeadMinutes      *int
	EarlyReminderLeadMinutes *int
	Priority                 model.TaskPriority
	Tags                     []string
}

// IntakeInput is the input for free-text task intake.
type IntakeInput struct {
	RawText         string
	SourceMessageID int64
}

// IntakeOutput is the result of task intake. Zero tasks means the
// extractor found nothing in the message, which is not an error.
type IntakeOutput struct {
	Tasks []model.Task
}

// UpcomingLimit caps the "next up" listing, matching what fits in one
// chat message.
const UpcomingLimit = 5

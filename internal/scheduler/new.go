package scheduler

import (
	"taskping/internal/task/repository"
	"taskping/pkg/civiltime"
	pkgLog "taskping/pkg/log"
)

// Notifier delivers a text message to a chat. Satisfied by the
// Telegram bot client.
type Notifier interface {
	SendMessage(chatID int64, text string) error
}

// Scheduler runs the periodic passes: due-reminder dispatch and the
// morning digest. Each pass is a single scan safe to re-invoke on any
// cadence.
type Scheduler struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier Notifier
	civil    *civiltime.Authority
}

// New creates a Scheduler.
func New(l pkgLog.Logger, repo repository.Repository, notifier Notifier, civil *civiltime.Authority) *Scheduler {
	return &Scheduler{
		l:        l,
		repo:     repo,
		notifier: notifier,
		civil:    civil,
	}
}

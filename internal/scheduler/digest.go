package scheduler

import (
	"context"
	"fmt"
	"strings"

	"taskping/internal/model"
)

const logPrefixDigest = "scheduler.RunDailyDigest"

// RunDailyDigest sends every chat with open tasks exactly one morning
// message: a numbered plan of today's dated tasks, or an empty-day
// note when nothing is due. Per-chat failures are logged and do not
// stop the remaining chats.
func (s *Scheduler) RunDailyDigest(ctx context.Context) error {
	start, end := s.civil.DayBoundsUTC()
	today := s.civil.FormatDate(s.civil.Now())

	chats, err := s.repo.DistinctOpenChats(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to list chats: %w", logPrefixDigest, err)
	}

	for _, chatID := range chats {
		tasks, err := s.repo.ListOpenInRange(ctx, chatID, start, end)
		if err != nil {
			s.l.Errorf(ctx, "%s: failed to list tasks for chat=%d: %v", logPrefixDigest, chatID, err)
			continue
		}

		text := s.digestText(today, tasks)
		if err := s.notifier.SendMessage(chatID, text); err != nil {
			s.l.Errorf(ctx, "%s: send to chat=%d failed: %v", logPrefixDigest, chatID, err)
		}
	}

	return nil
}

func (s *Scheduler) digestText(today string, tasks []model.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("Good morning! Nothing scheduled for today (%s). Enjoy the open day 🎉", today)
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, fmt.Sprintf("Good morning! Here's your plan for today (%s):", today))
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, model.FormatTaskLine(s.civil, t)))
	}
	return strings.Join(lines, "\n")
}

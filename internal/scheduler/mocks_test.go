package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"taskping/internal/model"
	repo "taskping/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type sentMessage struct {
	chatID int64
	text   string
}

// mockNotifier records sent messages and can fail selectively.
type mockNotifier struct {
	sent      []sentMessage
	failChats map[int64]bool
}

func (m *mockNotifier) SendMessage(chatID int64, text string) error {
	if m.failChats[chatID] {
		return errors.New("telegram unreachable")
	}
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

// mockRepository is an in-memory store, same shape as the scan queries.
type mockRepository struct {
	tasks    []model.Task
	failList bool
}

func (m *mockRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	return nil, errors.New("not used")
}

func (m *mockRepository) ListOpen(ctx context.Context, chatID int64, limit int) ([]model.Task, error) {
	return nil, errors.New("not used")
}

func (m *mockRepository) ListOpenInRange(ctx context.Context, chatID int64, start, end time.Time) ([]model.Task, error) {
	if m.failList {
		return nil, errors.New("db error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.ChatID != chatID || t.Status != model.StatusOpen || t.DueAt == nil {
			continue
		}
		if !t.DueAt.Before(start) && t.DueAt.Before(end) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.Before(*out[j].DueAt) })
	return out, nil
}

func (m *mockRepository) ListDueReminders(ctx context.Context, now time.Time) ([]model.Task, error) {
	if m.failList {
		return nil, errors.New("db error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.Status != model.StatusOpen {
			continue
		}
		if (t.RemindAt != nil && !t.RemindAt.After(now)) ||
			(t.EarlyRemindAt != nil && !t.EarlyRemindAt.After(now)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepository) MarkDone(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, errors.New("not used")
}

func (m *mockRepository) Reschedule(ctx context.Context, id string, newDue time.Time) (model.Task, error) {
	return model.Task{}, errors.New("not used")
}

func (m *mockRepository) ClearReminder(ctx context.Context, id string, field repo.ReminderField) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			if field == repo.ReminderPrimary {
				m.tasks[i].RemindAt = nil
			} else {
				m.tasks[i].EarlyRemindAt = nil
			}
			return nil
		}
	}
	return fmt.Errorf("unknown task %s", id)
}

func (m *mockRepository) DistinctOpenChats(ctx context.Context) ([]int64, error) {
	seen := map[int64]bool{}
	var chats []int64
	for _, t := range m.tasks {
		if t.Status == model.StatusOpen && !seen[t.ChatID] {
			seen[t.ChatID] = true
			chats = append(chats, t.ChatID)
		}
	}
	return chats, nil
}

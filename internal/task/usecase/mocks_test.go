package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"taskping/internal/model"
	repo "taskping/internal/task/repository"
	"taskping/pkg/gcalendar"
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

// mockRepository is an in-memory store honoring the ordering contract.
type mockRepository struct {
	tasks      []model.Task
	nextID     int
	failCreate bool
	failUpdate bool
}

func (m *mockRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if m.failCreate {
		return nil, errors.New("db error")
	}
	created := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		m.nextID++
		t := model.Task{
			ID:              fmt.Sprintf("task-%d", m.nextID),
			ChatID:          opt.ChatID,
			SourceMessageID: opt.SourceMessageID,
			Title:           opt.Title,
			Description:     opt.Description,
			DueAt:           opt.DueAt,
			RemindAt:        opt.RemindAt,
			EarlyRemindAt:   opt.EarlyRemindAt,
			Priority:        opt.Priority,
			Tags:            opt.Tags,
			Status:          model.StatusOpen,
			CreatedAt:       time.Now(),
		}
		m.tasks = append(m.tasks, t)
		created = append(created, t)
	}
	return created, nil
}

func (m *mockRepository) ListOpen(ctx context.Context, chatID int64, limit int) ([]model.Task, error) {
	var open []model.Task
	for _, t := range m.tasks {
		if t.ChatID == chatID && t.Status == model.StatusOpen {
			open = append(open, t)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i], open[j]
		switch {
		case a.DueAt == nil && b.DueAt == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.DueAt == nil:
			return false
		case b.DueAt == nil:
			return true
		case a.DueAt.Equal(*b.DueAt):
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.DueAt.Before(*b.DueAt)
		}
	})
	if len(open) > limit {
		open = open[:limit]
	}
	return open, nil
}

func (m *mockRepository) ListOpenInRange(ctx context.Context, chatID int64, start, end time.Time) ([]model.Task, error) {
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
	if m.failUpdate {
		return model.Task{}, errors.New("db error")
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id && m.tasks[i].Status == model.StatusOpen {
			m.tasks[i].Status = model.StatusDone
			return m.tasks[i], nil
		}
	}
	return model.Task{}, repo.ErrNotFound
}

func (m *mockRepository) Reschedule(ctx context.Context, id string, newDue time.Time) (model.Task, error) {
	if m.failUpdate {
		return model.Task{}, errors.New("db error")
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id && m.tasks[i].Status == model.StatusOpen {
			m.tasks[i].DueAt = &newDue
			m.tasks[i].RemindAt = nil
			m.tasks[i].EarlyRemindAt = nil
			return m.tasks[i], nil
		}
	}
	return model.Task{}, repo.ErrNotFound
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
	return repo.ErrNotFound
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

type mockCalendarClient struct {
	fail    bool
	created int
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.created++
	return &gcalendar.Event{HtmlLink: "http://cal.link"}, nil
}

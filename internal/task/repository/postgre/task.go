package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskping/internal/model"
	repo "taskping/internal/task/repository"
)

const taskColumns = `id, chat_id, source_message_id, title, description, due_at, remind_at, early_remind_at, priority, tags, status, created_at`

// CreateTasks inserts the whole batch inside one transaction so a
// partial extraction never leaves a subset of tasks visible.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tasks (id, chat_id, source_message_id, title, description, due_at, remind_at, early_remind_at, priority, tags, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'OPEN', NOW())
		RETURNING ` + taskColumns

	created := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		row := tx.QueryRowContext(ctx, query,
			uuid.NewString(), opt.ChatID, opt.SourceMessageID,
			opt.Title, nullString(opt.Description),
			opt.DueAt, opt.RemindAt, opt.EarlyRemindAt,
			string(opt.Priority), pq.Array(opt.Tags),
		)
		t, scanErr := scanTask(row)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s: insert %q: %v", r.dsn("CreateTasks"), opt.Title, scanErr)
			return nil, repo.ErrFailedToInsert
		}
		created = append(created, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return created, nil
}

// ListOpen returns the chat's open tasks under the ordinal ordering
// contract: due ascending, undated last, creation time as tie-break.
func (r *implRepository) ListOpen(ctx context.Context, chatID int64, limit int) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE chat_id = $1 AND status = 'OPEN'
		ORDER BY due_at ASC NULLS LAST, created_at ASC
		LIMIT $2`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, chatID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOpen"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListOpenInRange returns the chat's open tasks with due in [start, end).
func (r *implRepository) ListOpenInRange(ctx context.Context, chatID int64, start, end time.Time) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE chat_id = $1 AND status = 'OPEN' AND due_at >= $2 AND due_at < $3
		ORDER BY due_at ASC`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, chatID, start, end)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOpenInRange"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListDueReminders returns all open tasks with an elapsed reminder
// trigger, across every chat.
func (r *implRepository) ListDueReminders(ctx context.Context, now time.Time) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE status = 'OPEN' AND (remind_at <= $1 OR early_remind_at <= $1)`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDueReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()
	return collectTasks(rows)
}

// MarkDone transitions a task OPEN → DONE. Conditional on the row still
// being OPEN so a concurrent completion cannot be applied twice.
func (r *implRepository) MarkDone(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks SET status = 'DONE'
		WHERE id = $1 AND status = 'OPEN'
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkDone"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// Reschedule sets a new due instant and clears both reminder triggers.
// Reminders are not re-derived for a snoozed task; a later flow has to
// set them again explicitly.
func (r *implRepository) Reschedule(ctx context.Context, id string, newDue time.Time) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks SET due_at = $2, remind_at = NULL, early_remind_at = NULL
		WHERE id = $1 AND status = 'OPEN'
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, newDue))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Reschedule"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// ClearReminder nulls a single fired trigger field.
func (r *implRepository) ClearReminder(ctx context.Context, id string, field repo.ReminderField) error {
	column := "remind_at"
	if field == repo.ReminderEarly {
		column = "early_remind_at"
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s = NULL WHERE id = $1`, column)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearReminder"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DistinctOpenChats returns every chat with at least one open task.
func (r *implRepository) DistinctOpenChats(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT chat_id FROM tasks WHERE status = 'OPEN'`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DistinctOpenChats"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var chats []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, repo.ErrFailedToList
		}
		chats = append(chats, chatID)
	}
	return chats, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package postgre

import (
	"database/sql"

	"github.com/lib/pq"

	"taskping/internal/model"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t             model.Task
		sourceMessage sql.NullInt64
		description   sql.NullString
		dueAt         sql.NullTime
		remindAt      sql.NullTime
		earlyRemindAt sql.NullTime
		priority      string
		status        string
	)

	err := row.Scan(
		&t.ID, &t.ChatID, &sourceMessage, &t.Title, &description,
		&dueAt, &remindAt, &earlyRemindAt,
		&priority, pq.Array(&t.Tags), &status, &t.CreatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	if sourceMessage.Valid {
		t.SourceMessageID = &sourceMessage.Int64
	}
	t.Description = description.String
	if dueAt.Valid {
		v := dueAt.Time
		t.DueAt = &v
	}
	if remindAt.Valid {
		v := remindAt.Time
		t.RemindAt = &v
	}
	if earlyRemindAt.Valid {
		v := earlyRemindAt.Time
		t.EarlyRemindAt = &v
	}
	t.Priority = model.TaskPriority(priority)
	t.Status = model.TaskStatus(status)

	return t, nil
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

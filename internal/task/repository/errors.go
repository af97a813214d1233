package repository

import "errors"

var (
	ErrNotFound       = errors.New("task not found")
	ErrFailedToInsert = errors.New("failed to insert tasks")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
)

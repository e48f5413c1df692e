package task

import "errors"

var (
	ErrNotFound   = errors.New("task not found")
	ErrEmptyField = errors.New("missing required field")
	ErrBadDate    = errors.New("task_date must be YYYY-MM-DD")
	ErrDuplicate  = errors.New("task already exists for that date")
)
